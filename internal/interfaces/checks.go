package interfaces

// Compile-time checks that the concrete types wired together in
// internal/entrypoint and internal/cli satisfy their interfaces.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/catalogexport/internal/cli"
	"github.com/mrlokans/catalogexport/internal/database"
	"github.com/mrlokans/catalogexport/internal/export"
	"github.com/mrlokans/catalogexport/internal/scheduler"
	"github.com/mrlokans/catalogexport/internal/services"
	"github.com/mrlokans/catalogexport/internal/tasks"
)

// =============================================================================
// Data Access Layer
// =============================================================================

var _ services.ProductReader = (*database.Database)(nil)
var _ services.ExportRunRecorder = (*database.Database)(nil)
var _ tasks.ProductCounter = (*database.Database)(nil)
var _ cli.ProductStore = (*database.Database)(nil)

// =============================================================================
// Export Pipeline
// =============================================================================

var _ export.Exporter = (*export.XMLExporter)(nil)
var _ export.Exporter = (*export.CSVExporter)(nil)

var _ export.FragmentRenderable = (*export.MultiValue)(nil)
var _ export.FragmentRenderable = (*export.UsergroupAwareMultiValue)(nil)
var _ export.FragmentRenderable = (*export.AllOrdernumbers)(nil)
var _ export.FragmentRenderable = (*export.Attribute)(nil)
var _ export.FragmentRenderable = (*export.Property)(nil)

// =============================================================================
// Background Work
// =============================================================================

var _ tasks.PageExporter = (*services.ExportService)(nil)
var _ scheduler.CatalogExporter = (*services.ExportService)(nil)
var _ scheduler.CatalogExporter = (*tasks.QueuedCatalogExport)(nil)
