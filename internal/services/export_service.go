package services

import (
	"context"
	"fmt"
	"log"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/mrlokans/catalogexport/internal/audit"
	"github.com/mrlokans/catalogexport/internal/entities"
	"github.com/mrlokans/catalogexport/internal/export"
)

// PageResult describes one exported page.
type PageResult struct {
	Start    int
	Count    int
	Total    int
	Exported int
	Skipped  int
	FilePath string
}

// ExportResult contains the outcome of a full catalog export.
type ExportResult struct {
	RunID         string
	Total         int
	ItemsExported int
	ItemsSkipped  int
	Pages         []PageResult
	ManifestPath  string
}

// ExportService pages products out of the catalog and hands them to an
// exporter. Products that fail conversion are logged and skipped, so a page
// may hold fewer items than requested.
type ExportService struct {
	products  ProductReader
	runs      ExportRunRecorder
	exporter  export.Exporter
	outputDir string
	auditor   *audit.Auditor
}

// NewExportService creates a new ExportService. runs and auditor are optional.
func NewExportService(products ProductReader, exporter export.Exporter, outputDir string, runs ExportRunRecorder, auditor *audit.Auditor) *ExportService {
	return &ExportService{
		products:  products,
		runs:      runs,
		exporter:  exporter,
		outputDir: outputDir,
		auditor:   auditor,
	}
}

// loadPage reads products [start, start+count) and converts them.
func (s *ExportService) loadPage(start, count int) ([]*export.Item, int, int, error) {
	total, err := s.products.CountProducts()
	if err != nil {
		return nil, 0, 0, fmt.Errorf("count products: %w", err)
	}

	products, err := s.products.GetProducts(start, count)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("load products %d-%d: %w", start, start+count, err)
	}

	items := make([]*export.Item, 0, len(products))
	skipped := 0
	for _, p := range products {
		item, err := ProductToItem(s.exporter, p)
		if err != nil {
			log.Printf("[EXPORT] Skipping product: %v", err)
			skipped++
			continue
		}
		items = append(items, item)
	}
	return items, total, skipped, nil
}

// SerializePage renders a page of the catalog without writing a file.
func (s *ExportService) SerializePage(ctx context.Context, start, count int) (string, PageResult, error) {
	if err := ctx.Err(); err != nil {
		return "", PageResult{}, err
	}

	items, total, skipped, err := s.loadPage(start, count)
	if err != nil {
		return "", PageResult{}, err
	}

	out, err := s.exporter.SerializeItems(items, start, count, total)
	if err != nil {
		return "", PageResult{}, fmt.Errorf("serialize page %d: %w", start, err)
	}

	return out, PageResult{
		Start:    start,
		Count:    count,
		Total:    total,
		Exported: len(items),
		Skipped:  skipped,
	}, nil
}

// ExportPage writes one page file and records the run. runID groups pages of
// the same full export; an empty runID gets a fresh one.
func (s *ExportService) ExportPage(ctx context.Context, runID string, start, count int) (PageResult, error) {
	if err := ctx.Err(); err != nil {
		return PageResult{}, err
	}
	if runID == "" {
		runID = uuid.NewString()
	}

	items, total, skipped, err := s.loadPage(start, count)
	if err != nil {
		s.recordRun(runID, PageResult{Start: start, Count: count}, err)
		return PageResult{}, err
	}

	result := PageResult{
		Start:    start,
		Count:    count,
		Total:    total,
		Exported: len(items),
		Skipped:  skipped,
	}

	path, err := s.exporter.SerializeItemsToFile(s.outputDir, items, start, count, total)
	if err != nil {
		err = fmt.Errorf("export page %d: %w", start, err)
		s.recordRun(runID, result, err)
		return PageResult{}, err
	}
	result.FilePath = path

	s.recordRun(runID, result, nil)
	log.Printf("[EXPORT] Wrote %d items (%d skipped) to %s", result.Exported, result.Skipped, path)

	return result, nil
}

// ExportAll writes the whole catalog, one file per ItemsPerPage products,
// and saves a manifest when an auditor is configured.
func (s *ExportService) ExportAll(ctx context.Context) (ExportResult, error) {
	startedAt := time.Now()
	result := ExportResult{RunID: uuid.NewString()}

	total, err := s.products.CountProducts()
	if err != nil {
		return result, fmt.Errorf("count products: %w", err)
	}
	result.Total = total

	if total == 0 {
		log.Printf("[EXPORT] No products to export")
		return result, nil
	}

	perPage := s.exporter.ItemsPerPage()
	var exportErr error
	for start := 0; start < total; start += perPage {
		page, err := s.ExportPage(ctx, result.RunID, start, perPage)
		if err != nil {
			exportErr = err
			break
		}
		result.Pages = append(result.Pages, page)
		result.ItemsExported += page.Exported
		result.ItemsSkipped += page.Skipped
	}

	if s.auditor != nil {
		path, err := s.auditor.SaveManifest(s.manifest(result, startedAt, exportErr))
		if err != nil {
			log.Printf("[EXPORT] Failed to save manifest: %v", err)
		} else {
			result.ManifestPath = path
		}
	}

	if exportErr != nil {
		return result, exportErr
	}

	log.Printf("[EXPORT] Exported %d of %d items in %d pages (%v)",
		result.ItemsExported, total, len(result.Pages), time.Since(startedAt).Round(time.Millisecond))
	return result, nil
}

func (s *ExportService) manifest(result ExportResult, startedAt time.Time, exportErr error) audit.Manifest {
	finishedAt := time.Now()
	m := audit.Manifest{
		RunID:         result.RunID,
		Format:        s.exporter.Type().String(),
		Status:        audit.ManifestStatusCompleted,
		StartedAt:     startedAt,
		FinishedAt:    &finishedAt,
		TotalItems:    result.Total,
		ItemsExported: result.ItemsExported,
		ItemsSkipped:  result.ItemsSkipped,
	}
	for _, p := range result.Pages {
		m.Pages = append(m.Pages, audit.ManifestPage{
			Start:    p.Start,
			Count:    p.Count,
			Exported: p.Exported,
			FilePath: p.FilePath,
		})
	}
	if exportErr != nil {
		m.Status = audit.ManifestStatusFailed
		m.Error = exportErr.Error()
	}
	return m
}

func (s *ExportService) recordRun(runID string, page PageResult, err error) {
	if s.runs == nil {
		return
	}
	run := &entities.ExportRun{
		RunID:    runID,
		Format:   s.exporter.Type().String(),
		Start:    page.Start,
		Count:    page.Count,
		Total:    page.Total,
		Exported: page.Exported,
		Skipped:  page.Skipped,
		FilePath: page.FilePath,
		Status:   entities.ExportRunStatusSuccess,
	}
	if err != nil {
		run.Status = entities.ExportRunStatusFailed
		run.ErrorMsg = truncate(err.Error(), 500)
	}
	if recordErr := s.runs.RecordExportRun(run); recordErr != nil {
		log.Printf("[EXPORT] Failed to record export run: %v", recordErr)
	}
}

// truncate cuts s to at most max bytes without splitting a UTF-8 rune.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}
