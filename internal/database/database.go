package database

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/catalogexport/internal/entities"
)

// ErrProductNotFound is returned when no product matches the lookup.
var ErrProductNotFound = errors.New("product not found")

type Database struct {
	DB *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&entities.Product{},
		&entities.ProductValue{},
		&entities.ProductOrdernumber{},
		&entities.ProductAttribute{},
		&entities.ProductProperty{},
		&entities.ExportRun{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return &Database{DB: db}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SaveProduct upserts a product by ExternalID. Child rows of an existing
// product are replaced, not merged.
func (d *Database) SaveProduct(product *entities.Product) error {
	if product.ExternalID == "" {
		return fmt.Errorf("product external id is required")
	}
	numberChildren(product)

	return d.DB.Transaction(func(tx *gorm.DB) error {
		var existing entities.Product
		err := tx.Where("external_id = ?", product.ExternalID).First(&existing).Error
		switch {
		case err == nil:
			product.ID = existing.ID
			product.CreatedAt = existing.CreatedAt
			if err := deleteChildren(tx, existing.ID); err != nil {
				return err
			}
			clearChildIDs(product)
			if err := tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(product).Error; err != nil {
				return fmt.Errorf("failed to update product %s: %w", product.ExternalID, err)
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(product).Error; err != nil {
				return fmt.Errorf("failed to create product %s: %w", product.ExternalID, err)
			}
		default:
			return err
		}
		return nil
	})
}

func deleteChildren(tx *gorm.DB, productID uint) error {
	for _, model := range []any{
		&entities.ProductValue{},
		&entities.ProductOrdernumber{},
		&entities.ProductAttribute{},
		&entities.ProductProperty{},
	} {
		if err := tx.Where("product_id = ?", productID).Delete(model).Error; err != nil {
			return fmt.Errorf("failed to clear product children: %w", err)
		}
	}
	return nil
}

// numberChildren records slice order so reads return values in insertion order.
func numberChildren(p *entities.Product) {
	for i := range p.Values {
		p.Values[i].Position = i
	}
	for i := range p.Ordernumbers {
		p.Ordernumbers[i].Position = i
	}
	for i := range p.Attributes {
		p.Attributes[i].Position = i
	}
	for i := range p.Properties {
		p.Properties[i].Position = i
	}
}

func clearChildIDs(p *entities.Product) {
	for i := range p.Values {
		p.Values[i].ID = 0
	}
	for i := range p.Ordernumbers {
		p.Ordernumbers[i].ID = 0
	}
	for i := range p.Attributes {
		p.Attributes[i].ID = 0
	}
	for i := range p.Properties {
		p.Properties[i].ID = 0
	}
}

func preloadChildren(db *gorm.DB) *gorm.DB {
	byPosition := func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }
	return db.
		Preload("Values", byPosition).
		Preload("Ordernumbers", byPosition).
		Preload("Attributes", byPosition).
		Preload("Properties", byPosition)
}

// GetProducts returns a page of products ordered by id.
func (d *Database) GetProducts(offset, limit int) ([]entities.Product, error) {
	var products []entities.Product
	err := preloadChildren(d.DB).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (d *Database) CountProducts() (int, error) {
	var count int64
	if err := d.DB.Model(&entities.Product{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

func (d *Database) GetProductByExternalID(externalID string) (*entities.Product, error) {
	var product entities.Product
	err := preloadChildren(d.DB).Where("external_id = ?", externalID).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (d *Database) DeleteProduct(externalID string) error {
	return d.DB.Transaction(func(tx *gorm.DB) error {
		var product entities.Product
		err := tx.Where("external_id = ?", externalID).First(&product).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		if err != nil {
			return err
		}
		if err := deleteChildren(tx, product.ID); err != nil {
			return err
		}
		return tx.Delete(&product).Error
	})
}

func (d *Database) RecordExportRun(run *entities.ExportRun) error {
	return d.DB.Create(run).Error
}

// GetRecentExportRuns returns the latest runs, newest first.
func (d *Database) GetRecentExportRuns(limit int) ([]entities.ExportRun, error) {
	var runs []entities.ExportRun
	err := d.DB.Order("created_at DESC, id DESC").Limit(limit).Find(&runs).Error
	return runs, err
}
