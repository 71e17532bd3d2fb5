package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/catalogexport/internal/config"
	"github.com/mrlokans/catalogexport/internal/entities"
)

const productsJSON = `[
  {"external_id": "123", "groups": "b2c",
   "values": [{"field": "name", "value": "Shirt"},
              {"field": "price", "value": "19.9"}],
   "ordernumbers": [{"value": "SKU1"}, {"value": "SKU2"}],
   "properties": [{"key": "brand", "value": "Acme"}]},
  {"external_id": "456",
   "values": [{"field": "name", "value": "Socks"}],
   "ordernumbers": [{"value": "SKU3"}]}
]`

type fakeStore struct {
	saved   []string
	deleted []string
	fail    string
}

func (f *fakeStore) SaveProduct(p *entities.Product) error {
	if p.ExternalID == f.fail {
		return errors.New("boom")
	}
	f.saved = append(f.saved, p.ExternalID)
	return nil
}

func (f *fakeStore) DeleteProduct(externalID string) error {
	if externalID == f.fail {
		return errors.New("boom")
	}
	f.deleted = append(f.deleted, externalID)
	return nil
}

func TestValidateProducts(t *testing.T) {
	tests := []struct {
		name     string
		products []entities.Product
		wantErr  string
	}{
		{
			name:     "valid products",
			products: []entities.Product{{ExternalID: "1"}, {ExternalID: "2"}},
		},
		{
			name:     "missing external id",
			products: []entities.Product{{ExternalID: "1"}, {}},
			wantErr:  "product #2 has no external_id",
		},
		{
			name:     "duplicate external id",
			products: []entities.Product{{ExternalID: "1"}, {ExternalID: "1"}},
			wantErr:  `duplicate external_id "1"`,
		},
		{
			name: "unknown field",
			products: []entities.Product{{
				ExternalID: "1",
				Values:     []entities.ProductValue{{Field: "colour", Value: "red"}},
			}},
			wantErr: `unknown field "colour"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProducts(tt.products)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestImportProductsCommand_apply(t *testing.T) {
	products := []entities.Product{{ExternalID: "1"}, {ExternalID: "2"}, {ExternalID: "3"}}

	t.Run("saves products and counts failures", func(t *testing.T) {
		store := &fakeStore{fail: "2"}
		done, failed := (&ImportProductsCommand{}).apply(store, products)
		assert.Equal(t, 2, done)
		assert.Equal(t, 1, failed)
		assert.Equal(t, []string{"1", "3"}, store.saved)
		assert.Empty(t, store.deleted)
	})

	t.Run("deletes products", func(t *testing.T) {
		store := &fakeStore{}
		done, failed := (&ImportProductsCommand{Delete: true}).apply(store, products)
		assert.Equal(t, 3, done)
		assert.Zero(t, failed)
		assert.Equal(t, []string{"1", "2", "3"}, store.deleted)
	})
}

func TestExportCommand_ParseFlags(t *testing.T) {
	cfg := &config.Config{
		Export: config.Export{Type: "xml", ItemsPerPage: 20, CSVProperties: []string{"brand"}},
	}

	t.Run("keeps configured defaults", func(t *testing.T) {
		cmd := NewExportCommand(cfg)
		require.NoError(t, cmd.ParseFlags(nil))
		assert.Equal(t, "xml", cmd.Export.Type)
		assert.Equal(t, 20, cmd.Export.ItemsPerPage)
		assert.Equal(t, []string{"brand"}, cmd.Export.CSVProperties)
	})

	t.Run("flags override configuration", func(t *testing.T) {
		cmd := NewExportCommand(cfg)
		require.NoError(t, cmd.ParseFlags([]string{
			"-type", "csv", "-per-page", "5", "-usergroup", "b2b", "-properties", "material, size,",
		}))
		assert.Equal(t, "csv", cmd.Export.Type)
		assert.Equal(t, 5, cmd.Export.ItemsPerPage)
		assert.Equal(t, "b2b", cmd.Export.Usergroup)
		assert.Equal(t, []string{"material", "size"}, cmd.Export.CSVProperties)
	})

	t.Run("rejects negative start", func(t *testing.T) {
		cmd := NewExportCommand(cfg)
		assert.Error(t, cmd.ParseFlags([]string{"-start", "-1"}))
	})
}

func TestImportThenExport(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "catalog.db")
	productsPath := filepath.Join(dir, "products.json")
	require.NoError(t, os.WriteFile(productsPath, []byte(productsJSON), 0o644))

	importCmd := &ImportProductsCommand{FilePath: productsPath, DatabasePath: dbPath}
	require.NoError(t, importCmd.Run())

	outDir := filepath.Join(dir, "out")
	exportCmd := &ExportCommand{
		Export: config.Export{
			Type:          "csv",
			ItemsPerPage:  10,
			CSVProperties: []string{"brand"},
			OutputDir:     outDir,
			FilePrefix:    "items",
			ManifestDir:   filepath.Join(dir, "manifests"),
		},
		DatabasePath: dbPath,
	}
	require.NoError(t, exportCmd.Run())

	data, err := os.ReadFile(filepath.Join(outDir, "items_0_10.csv"))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "id\tordernumber\tname"))
	assert.True(t, strings.HasSuffix(lines[0], "\tbrand"))
	assert.True(t, strings.HasPrefix(lines[1], "123\tSKU1|SKU2\tShirt\t"))
	assert.True(t, strings.HasSuffix(lines[1], "\tAcme"))
	assert.True(t, strings.HasPrefix(lines[2], "456\tSKU3\tSocks\t"))

	manifests, err := filepath.Glob(filepath.Join(dir, "manifests", "export-*.json"))
	require.NoError(t, err)
	assert.Len(t, manifests, 1)
}
