package database

import (
	"path/filepath"
	"testing"

	"github.com/mrlokans/catalogexport/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a fresh test database
func setupTestDB(t *testing.T) *Database {
	t.Helper()
	db, err := NewDatabase(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func shirt(externalID string) *entities.Product {
	return &entities.Product{
		ExternalID: externalID,
		Groups:     "b2b,retail",
		Values: []entities.ProductValue{
			{Field: entities.ProductFieldName, Value: "Shirt"},
			{Field: entities.ProductFieldName, Value: "Corporate Shirt", Usergroup: "b2b"},
			{Field: entities.ProductFieldPrice, Value: "19.90"},
		},
		Ordernumbers: []entities.ProductOrdernumber{
			{Value: "SKU1"},
			{Value: "SKU2"},
		},
		Attributes: []entities.ProductAttribute{
			{Key: "color", Value: "red"},
		},
		Properties: []entities.ProductProperty{
			{Key: "brand", Value: "Acme"},
		},
	}
}

func TestDatabase(t *testing.T) {
	db := setupTestDB(t)

	t.Run("SaveProduct creates new product with children", func(t *testing.T) {
		product := shirt("123")
		require.NoError(t, db.SaveProduct(product))
		assert.NotZero(t, product.ID)
		assert.Equal(t, product.ID, product.Values[0].ProductID)
	})

	t.Run("GetProductByExternalID preserves child order", func(t *testing.T) {
		product, err := db.GetProductByExternalID("123")
		require.NoError(t, err)
		require.Len(t, product.Values, 3)
		assert.Equal(t, "Shirt", product.Values[0].Value)
		assert.Equal(t, "b2b", product.Values[1].Usergroup)
		require.Len(t, product.Ordernumbers, 2)
		assert.Equal(t, "SKU1", product.Ordernumbers[0].Value)
		assert.Equal(t, "SKU2", product.Ordernumbers[1].Value)
	})

	t.Run("SaveProduct replaces children of existing product", func(t *testing.T) {
		updated := shirt("123")
		updated.Ordernumbers = []entities.ProductOrdernumber{{Value: "SKU3"}}
		require.NoError(t, db.SaveProduct(updated))

		product, err := db.GetProductByExternalID("123")
		require.NoError(t, err)
		require.Len(t, product.Ordernumbers, 1)
		assert.Equal(t, "SKU3", product.Ordernumbers[0].Value)

		count, err := db.CountProducts()
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("SaveProduct requires an external id", func(t *testing.T) {
		assert.Error(t, db.SaveProduct(&entities.Product{}))
	})

	t.Run("GetProducts pages by id", func(t *testing.T) {
		require.NoError(t, db.SaveProduct(shirt("124")))
		require.NoError(t, db.SaveProduct(shirt("125")))

		page, err := db.GetProducts(1, 1)
		require.NoError(t, err)
		require.Len(t, page, 1)
		assert.Equal(t, "124", page[0].ExternalID)
		assert.Len(t, page[0].Values, 3)

		rest, err := db.GetProducts(2, 10)
		require.NoError(t, err)
		require.Len(t, rest, 1)
		assert.Equal(t, "125", rest[0].ExternalID)
	})

	t.Run("DeleteProduct removes product", func(t *testing.T) {
		require.NoError(t, db.DeleteProduct("125"))

		_, err := db.GetProductByExternalID("125")
		assert.ErrorIs(t, err, ErrProductNotFound)
		assert.ErrorIs(t, db.DeleteProduct("125"), ErrProductNotFound)
	})
}

func TestExportRuns(t *testing.T) {
	db := setupTestDB(t)

	for i := 0; i < 3; i++ {
		require.NoError(t, db.RecordExportRun(&entities.ExportRun{
			RunID:  "run",
			Format: "xml",
			Start:  i * 10,
			Count:  10,
			Status: entities.ExportRunStatusSuccess,
		}))
	}

	runs, err := db.GetRecentExportRuns(2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, 20, runs[0].Start)
	assert.Equal(t, 10, runs[1].Start)
}
