package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mrlokans/catalogexport/internal/config"
	"github.com/mrlokans/catalogexport/internal/database"
	"github.com/mrlokans/catalogexport/internal/entities"
)

// ProductStore is the part of the database the import command writes to.
type ProductStore interface {
	SaveProduct(product *entities.Product) error
	DeleteProduct(externalID string) error
}

// ImportProductsCommand loads products from a JSON file into the catalog.
type ImportProductsCommand struct {
	FilePath     string
	DatabasePath string
	Delete       bool // remove the listed products instead of saving them
	DryRun       bool
	Verbose      bool
}

// NewImportProductsCommand creates a new ImportProductsCommand
func NewImportProductsCommand() *ImportProductsCommand {
	return &ImportProductsCommand{}
}

// ParseFlags parses command line flags
func (cmd *ImportProductsCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("import-products", flag.ExitOnError)

	fs.StringVar(&cmd.FilePath, "file", "", "JSON file with an array of products (\"-\" reads stdin)")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the catalog database")
	fs.BoolVar(&cmd.Delete, "delete", false, "Delete the listed products by external_id")
	fs.BoolVar(&cmd.DryRun, "dry-run", false, "Validate the file without changing the database")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Enable verbose logging")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s import-products -file products.json [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Import products into the catalog database. Products are matched by\n")
		fmt.Fprintf(os.Stderr, "external_id; an existing product is replaced with the imported one.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExample product:\n")
		fmt.Fprintf(os.Stderr, `  {"external_id": "123", "groups": "b2c,b2b",
   "values": [{"field": "name", "value": "Shirt"},
              {"field": "price", "value": "19.90", "usergroup": "b2b"}],
   "ordernumbers": [{"value": "SKU1"}, {"value": "SKU2"}],
   "attributes": [{"key": "color", "value": "red"}],
   "properties": [{"key": "brand", "value": "Acme"}]}`+"\n")
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.FilePath == "" {
		fs.Usage()
		return fmt.Errorf("-file is required")
	}

	return nil
}

// Run executes the import command
func (cmd *ImportProductsCommand) Run() error {
	fmt.Println("📥 Product Import")
	fmt.Println("=================")

	products, err := cmd.readProducts()
	if err != nil {
		return err
	}

	fmt.Printf("📚 Found %d products in %s\n", len(products), cmd.FilePath)

	if err := ValidateProducts(products); err != nil {
		return err
	}

	if cmd.DryRun {
		fmt.Println("\n✅ Dry run complete. Use without -dry-run to import.")
		return nil
	}

	absDBPath, err := filepath.Abs(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for database: %w", err)
	}
	fmt.Printf("💾 Saving to database: %s\n", absDBPath)

	db, err := database.NewDatabase(absDBPath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	done, failed := cmd.apply(db, products)

	verb := "Imported"
	if cmd.Delete {
		verb = "Deleted"
	}
	fmt.Printf("\n✅ %s %d products", verb, done)
	if failed > 0 {
		fmt.Printf(", %d failed", failed)
	}
	fmt.Println()

	if failed > 0 {
		return fmt.Errorf("%d products failed", failed)
	}
	return nil
}

func (cmd *ImportProductsCommand) readProducts() ([]entities.Product, error) {
	var r io.Reader
	if cmd.FilePath == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(cmd.FilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open products file: %w", err)
		}
		defer f.Close()
		r = f
	}

	var products []entities.Product
	if err := json.NewDecoder(r).Decode(&products); err != nil {
		return nil, fmt.Errorf("failed to parse products file: %w", err)
	}
	return products, nil
}

func (cmd *ImportProductsCommand) apply(store ProductStore, products []entities.Product) (done, failed int) {
	for i := range products {
		p := &products[i]
		var err error
		if cmd.Delete {
			err = store.DeleteProduct(p.ExternalID)
		} else {
			err = store.SaveProduct(p)
		}
		if err != nil {
			fmt.Printf("❌ %s: %v\n", p.ExternalID, err)
			failed++
			continue
		}
		if cmd.Verbose {
			fmt.Printf("  %s (%d values, %d ordernumbers)\n", p.ExternalID, len(p.Values), len(p.Ordernumbers))
		}
		done++
	}
	return done, failed
}

// ValidateProducts checks that every product has a unique external id and
// only known fields.
func ValidateProducts(products []entities.Product) error {
	seen := make(map[string]bool, len(products))
	for i, p := range products {
		if p.ExternalID == "" {
			return fmt.Errorf("product #%d has no external_id", i+1)
		}
		if seen[p.ExternalID] {
			return fmt.Errorf("duplicate external_id %q", p.ExternalID)
		}
		seen[p.ExternalID] = true

		for _, v := range p.Values {
			if !v.Field.Valid() {
				return fmt.Errorf("product %s: unknown field %q", p.ExternalID, v.Field)
			}
		}
	}
	return nil
}
