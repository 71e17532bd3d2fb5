package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mrlokans/catalogexport/internal/services"
)

var scheduleParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// CatalogExporter runs one full catalog export.
type CatalogExporter interface {
	ExportAll(ctx context.Context) (services.ExportResult, error)
}

// ExportScheduler runs catalog exports on a cron schedule.
type ExportScheduler struct {
	exporter CatalogExporter
	schedule string

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	runMu      sync.Mutex
	isRunning  bool
	ctx        context.Context
	cancelFunc context.CancelFunc
	lastResult *services.ExportResult
	lastErr    error
}

func NewExportScheduler(exporter CatalogExporter, schedule string) *ExportScheduler {
	return &ExportScheduler{
		exporter: exporter,
		schedule: schedule,
		cron:     cron.New(cron.WithParser(scheduleParser)),
	}
}

// ValidateSchedule checks a five-field cron expression.
func ValidateSchedule(schedule string) error {
	_, err := scheduleParser.Parse(schedule)
	return err
}

// NextRunTime returns the next activation of schedule after from.
func NextRunTime(schedule string, from time.Time) (time.Time, error) {
	sched, err := scheduleParser.Parse(schedule)
	if err != nil {
		return time.Time{}, err
	}
	return sched.Next(from), nil
}

// DescribeSchedule returns a human-readable description of common schedules.
func DescribeSchedule(schedule string) string {
	switch schedule {
	case "0 * * * *":
		return "Every hour at :00"
	case "*/15 * * * *":
		return "Every 15 minutes"
	case "*/30 * * * *":
		return "Every 30 minutes"
	case "0 */6 * * *":
		return "Every 6 hours"
	case "0 0 * * *":
		return "Daily at midnight"
	default:
		return "Custom schedule: " + schedule
	}
}

// Start registers the export job and starts cron. The scheduler stops when
// ctx is cancelled.
func (s *ExportScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if err := ValidateSchedule(s.schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", s.schedule, err)
	}

	runCtx, cancel := context.WithCancel(ctx)
	entryID, err := s.cron.AddFunc(s.schedule, func() { s.runExport(runCtx) })
	if err != nil {
		cancel()
		return fmt.Errorf("failed to schedule export job: %w", err)
	}
	s.entryID = entryID
	s.ctx, s.cancelFunc = runCtx, cancel
	s.cron.Start()
	s.isRunning = true

	next, _ := NextRunTime(s.schedule, time.Now())
	log.Printf("Catalog export scheduler: started with schedule '%s' (%s). Next run: %v",
		s.schedule, DescribeSchedule(s.schedule), next)

	go func(done <-chan struct{}) {
		<-done
		s.Stop()
	}(s.ctx.Done())

	return nil
}

// Stop waits for a running export to finish and stops cron.
func (s *ExportScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	s.cancelFunc()
	stopped := s.cron.Stop()
	<-stopped.Done()
	s.cron.Remove(s.entryID)

	s.ctx = nil
	s.isRunning = false

	log.Printf("Catalog export scheduler: stopped")
}

// RunNow triggers an export in the background.
func (s *ExportScheduler) RunNow() {
	s.mu.RLock()
	ctx := s.ctx
	s.mu.RUnlock()
	if ctx == nil {
		ctx = context.Background()
	}
	go s.runExport(ctx)
}

func (s *ExportScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// GetNextRunTime returns when the next export will occur, or nil when stopped.
func (s *ExportScheduler) GetNextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}
	for _, entry := range s.cron.Entries() {
		if entry.ID == s.entryID {
			t := entry.Next
			return &t
		}
	}
	return nil
}

// LastResult returns the outcome of the most recent export.
func (s *ExportScheduler) LastResult() (*services.ExportResult, error) {
	s.runMu.Lock()
	defer s.runMu.Unlock()
	return s.lastResult, s.lastErr
}

// runExport performs one export. Overlapping runs are serialized.
func (s *ExportScheduler) runExport(ctx context.Context) {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	log.Printf("Catalog export: starting")
	startTime := time.Now()

	result, err := s.exporter.ExportAll(ctx)
	s.lastResult = &result
	s.lastErr = err
	if err != nil {
		log.Printf("Catalog export: failed: %v", err)
		return
	}

	log.Printf("Catalog export: run %s exported %d of %d items in %d pages (%v)",
		result.RunID, result.ItemsExported, result.Total, len(result.Pages),
		time.Since(startTime).Round(time.Millisecond))
}
