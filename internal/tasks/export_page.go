package tasks

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/mikestefanello/backlite"

	"github.com/mrlokans/catalogexport/internal/audit"
	"github.com/mrlokans/catalogexport/internal/export"
	"github.com/mrlokans/catalogexport/internal/services"
)

// PageExporter writes one page of the catalog.
type PageExporter interface {
	ExportPage(ctx context.Context, runID string, start, count int) (services.PageResult, error)
}

// ExportPageTask exports products [Start, Start+Count) into one file.
type ExportPageTask struct {
	RunID string `json:"run_id"`
	Start int    `json:"start"`
	Count int    `json:"count"`
}

// Config returns the queue configuration for export page tasks.
func (t ExportPageTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "export_page",
		MaxAttempts: 3,
		Backoff:     30 * time.Second,
		Timeout:     5 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// PlanExportPages splits a catalog of total products into page tasks.
func PlanExportPages(runID string, total, perPage int) []ExportPageTask {
	if total <= 0 || perPage < 1 {
		return nil
	}
	pages := make([]ExportPageTask, 0, (total+perPage-1)/perPage)
	for start := 0; start < total; start += perPage {
		pages = append(pages, ExportPageTask{RunID: runID, Start: start, Count: perPage})
	}
	return pages
}

// ExportPageProcessor creates a processor function for ExportPageTask.
func ExportPageProcessor(exporter PageExporter) backlite.QueueProcessor[ExportPageTask] {
	return func(ctx context.Context, task ExportPageTask) error {
		if exporter == nil {
			return fmt.Errorf("page exporter not configured")
		}

		result, err := exporter.ExportPage(ctx, task.RunID, task.Start, task.Count)
		if err != nil {
			return fmt.Errorf("export page %d+%d: %w", task.Start, task.Count, err)
		}

		log.Printf("[TASK] Exported page %d+%d of run %s: %d items, %d skipped",
			task.Start, task.Count, task.RunID, result.Exported, result.Skipped)
		return nil
	}
}

// NewExportPageQueue creates a backlite queue for export page tasks.
func NewExportPageQueue(exporter PageExporter) backlite.Queue {
	return backlite.NewQueue(ExportPageProcessor(exporter))
}

// ProductCounter reports the catalog size.
type ProductCounter interface {
	CountProducts() (int, error)
}

// QueuedCatalogExport runs a full export by enqueuing one task per page
// instead of writing pages inline.
type QueuedCatalogExport struct {
	client    *Client
	products  ProductCounter
	exporter  export.Exporter
	outputDir string
	auditor   *audit.Auditor
}

// NewQueuedCatalogExport creates a QueuedCatalogExport. Pages hold
// exporter.ItemsPerPage products; auditor is optional.
func NewQueuedCatalogExport(client *Client, products ProductCounter, exporter export.Exporter, outputDir string, auditor *audit.Auditor) *QueuedCatalogExport {
	return &QueuedCatalogExport{
		client:    client,
		products:  products,
		exporter:  exporter,
		outputDir: outputDir,
		auditor:   auditor,
	}
}

// ExportAll enqueues the pages and returns without waiting for them. RunID,
// Total and ManifestPath of the result are set. The manifest lists the files
// the queued pages will write.
func (q *QueuedCatalogExport) ExportAll(ctx context.Context) (services.ExportResult, error) {
	if err := ctx.Err(); err != nil {
		return services.ExportResult{}, err
	}

	startedAt := time.Now()
	total, err := q.products.CountProducts()
	if err != nil {
		return services.ExportResult{}, fmt.Errorf("count products: %w", err)
	}

	result := services.ExportResult{RunID: uuid.NewString(), Total: total}
	if total == 0 {
		log.Printf("[TASK] No products to export")
		return result, nil
	}

	perPage := q.exporter.ItemsPerPage()
	_, enqueueErr := q.client.EnqueueExportPages(result.RunID, total, perPage)

	if q.auditor != nil {
		path, err := q.auditor.SaveManifest(q.manifest(result, perPage, startedAt, enqueueErr))
		if err != nil {
			log.Printf("[TASK] Failed to save manifest for run %s: %v", result.RunID, err)
		} else {
			result.ManifestPath = path
		}
	}

	return result, enqueueErr
}

func (q *QueuedCatalogExport) manifest(result services.ExportResult, perPage int, startedAt time.Time, enqueueErr error) audit.Manifest {
	m := audit.Manifest{
		RunID:      result.RunID,
		Format:     q.exporter.Type().String(),
		Status:     audit.ManifestStatusQueued,
		StartedAt:  startedAt,
		TotalItems: result.Total,
	}
	if enqueueErr != nil {
		m.Status = audit.ManifestStatusFailed
		m.Error = enqueueErr.Error()
		return m
	}

	dir, err := filepath.Abs(q.outputDir)
	if err != nil {
		dir = q.outputDir
	}
	for _, page := range PlanExportPages(result.RunID, result.Total, perPage) {
		m.Pages = append(m.Pages, audit.ManifestPage{
			Start:    page.Start,
			Count:    page.Count,
			FilePath: filepath.Join(dir, q.exporter.FileName(page.Start, page.Count)),
		})
	}
	return m
}
