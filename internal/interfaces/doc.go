// Package interfaces lists the abstractions the catalog exporter is built
// from and checks their implementations at compile time.
//
// # Export
//
//   - export.Exporter: serializes items to XML or CSV (internal/export/exporter.go)
//   - export.FragmentRenderable: any item field that renders CSV and XML
//     fragments (internal/export/value.go)
//
// # Data Access
//
//   - services.ProductReader: paged catalog reads (internal/services/interfaces.go)
//   - services.ExportRunRecorder: per-page export history
//   - cli.ProductStore: product import and deletion (internal/cli/import_products.go)
//
// # Background Work
//
//   - tasks.PageExporter: writes one page from a queued task (internal/tasks/export_page.go)
//   - scheduler.CatalogExporter: a full export, run inline by
//     services.ExportService or fanned out by tasks.QueuedCatalogExport
//
// Every implementation is registered in checks.go.
package interfaces
