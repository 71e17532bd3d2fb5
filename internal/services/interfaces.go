package services

import "github.com/mrlokans/catalogexport/internal/entities"

// ProductReader provides paged read access to the catalog.
type ProductReader interface {
	GetProducts(offset, limit int) ([]entities.Product, error)
	CountProducts() (int, error)
}

// ExportRunRecorder persists a record per written export page.
type ExportRunRecorder interface {
	RecordExportRun(run *entities.ExportRun) error
}
