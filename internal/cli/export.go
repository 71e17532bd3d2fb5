package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mrlokans/catalogexport/internal/audit"
	"github.com/mrlokans/catalogexport/internal/config"
	"github.com/mrlokans/catalogexport/internal/database"
	"github.com/mrlokans/catalogexport/internal/entrypoint"
	"github.com/mrlokans/catalogexport/internal/services"
)

// ExportCommand writes the catalog to export files once and exits.
type ExportCommand struct {
	Export       config.Export
	DatabasePath string
	Properties   string
	Start        int
	Stdout       bool // print a single page instead of writing files
	Verbose      bool
}

// NewExportCommand creates an ExportCommand seeded from the environment.
func NewExportCommand(cfg *config.Config) *ExportCommand {
	return &ExportCommand{
		Export:       cfg.Export,
		DatabasePath: cfg.Database.Path,
		Properties:   strings.Join(cfg.Export.CSVProperties, ","),
	}
}

// ParseFlags parses command line flags
func (cmd *ExportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)

	fs.StringVar(&cmd.Export.Type, "type", cmd.Export.Type, "Export format: xml or csv")
	fs.IntVar(&cmd.Export.ItemsPerPage, "per-page", cmd.Export.ItemsPerPage, "Number of products per export file")
	fs.StringVar(&cmd.Export.OutputDir, "out", cmd.Export.OutputDir, "Directory to write export files to")
	fs.StringVar(&cmd.Export.Usergroup, "usergroup", cmd.Export.Usergroup, "Usergroup whose values are used for CSV columns")
	fs.StringVar(&cmd.Properties, "properties", cmd.Properties, "Comma-separated property keys appended as CSV columns")
	fs.StringVar(&cmd.Export.FilePrefix, "prefix", cmd.Export.FilePrefix, "Base name of export files")
	fs.StringVar(&cmd.DatabasePath, "db", cmd.DatabasePath, "Path to the catalog database")
	fs.IntVar(&cmd.Start, "start", 0, "Offset of the page printed with -stdout")
	fs.BoolVar(&cmd.Stdout, "stdout", false, "Print one page to stdout instead of writing files")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Print every written page")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s export [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Export the product catalog as paged XML or CSV files.\n\n")
		fmt.Fprintf(os.Stderr, "Files are named <prefix>_<start>_<count>.<ext> and replaced atomically.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s export\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s export -type csv -usergroup b2b -properties brand,material\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s export -type csv -stdout -start 40 -per-page 20\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	cmd.Export.CSVProperties = nil
	for _, p := range strings.Split(cmd.Properties, ",") {
		if p = strings.TrimSpace(p); p != "" {
			cmd.Export.CSVProperties = append(cmd.Export.CSVProperties, p)
		}
	}

	if cmd.Start < 0 {
		return fmt.Errorf("start must not be negative, got %d", cmd.Start)
	}

	return nil
}

// Run executes the export command
func (cmd *ExportCommand) Run() error {
	exporter, err := cmd.Export.NewExporter()
	if err != nil {
		return err
	}

	absDBPath, err := filepath.Abs(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for database: %w", err)
	}

	db, err := database.NewDatabase(absDBPath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	ctx := context.Background()

	if cmd.Stdout {
		svc := services.NewExportService(db, exporter, "", nil, nil)
		out, page, err := svc.SerializePage(ctx, cmd.Start, exporter.ItemsPerPage())
		if err != nil {
			return err
		}
		fmt.Print(out)
		if page.Skipped > 0 {
			fmt.Fprintf(os.Stderr, "Skipped %d products that could not be exported\n", page.Skipped)
		}
		return nil
	}

	fmt.Println("📦 Catalog Export")
	fmt.Println("=================")

	if err := entrypoint.CheckOutputDir(cmd.Export.OutputDir); err != nil {
		return err
	}
	absOutputDir, err := filepath.Abs(cmd.Export.OutputDir)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for output: %w", err)
	}

	fmt.Printf("💾 Database: %s\n", absDBPath)
	fmt.Printf("📁 Output: %s (%s, %d per page)\n", absOutputDir, exporter.Type(), exporter.ItemsPerPage())

	auditor := audit.NewAuditor(cmd.Export.ManifestDir)
	svc := services.NewExportService(db, exporter, absOutputDir, db, auditor)

	result, err := svc.ExportAll(ctx)
	if cmd.Verbose {
		for _, page := range result.Pages {
			fmt.Printf("  %s: %d items, %d skipped\n", page.FilePath, page.Exported, page.Skipped)
		}
	}
	if err != nil {
		return fmt.Errorf("export run %s failed: %w", result.RunID, err)
	}

	fmt.Printf("\n✅ Exported %d of %d products in %d files\n", result.ItemsExported, result.Total, len(result.Pages))
	if result.ItemsSkipped > 0 {
		fmt.Printf("⚠️  Skipped %d products with invalid data\n", result.ItemsSkipped)
	}
	if result.ManifestPath != "" {
		fmt.Printf("📝 Manifest: %s\n", result.ManifestPath)
	}

	return nil
}
