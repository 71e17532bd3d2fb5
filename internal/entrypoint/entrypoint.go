package entrypoint

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mrlokans/catalogexport/internal/audit"
	"github.com/mrlokans/catalogexport/internal/config"
	"github.com/mrlokans/catalogexport/internal/database"
	"github.com/mrlokans/catalogexport/internal/export"
	"github.com/mrlokans/catalogexport/internal/scheduler"
	"github.com/mrlokans/catalogexport/internal/services"
	"github.com/mrlokans/catalogexport/internal/tasks"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// CheckOutputDir creates dir if needed and verifies it is writable.
func CheckOutputDir(dir string) error {
	if dir == "" {
		return fmt.Errorf("output directory is not set")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	check, err := os.CreateTemp(dir, ".catalogexport-*")
	if err != nil {
		return fmt.Errorf("output directory %s is not writable: %w", dir, err)
	}
	name := check.Name()
	check.Close()
	return os.Remove(name)
}

// Wait blocks until SIGINT or SIGTERM and then runs onShutdown with the
// configured timeout.
func Wait(cfg *config.Config, onShutdown ShutdownFunc) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second
	log.Printf("Shutting down, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if onShutdown != nil {
		onShutdown(ctx)
	}
	log.Println("Exporter exiting")
}

// NewCatalogExporter picks how full exports run. With tasks enabled pages are
// fanned out over a new task client, which the caller must start and close;
// otherwise exportService writes them inline and the client is nil.
func NewCatalogExporter(cfg *config.Config, db *database.Database, exporter export.Exporter, exportService *services.ExportService, auditor *audit.Auditor) (scheduler.CatalogExporter, *tasks.Client, error) {
	if !cfg.Tasks.Enabled {
		return exportService, nil, nil
	}

	taskClient, err := tasks.NewClient(cfg.Database.Path, tasks.Config{
		Workers:         cfg.Tasks.Workers,
		ReleaseAfter:    cfg.Tasks.ReleaseAfter,
		CleanupInterval: cfg.Tasks.CleanupInterval,
	})
	if err != nil {
		return nil, nil, err
	}
	taskClient.Register(tasks.NewExportPageQueue(exportService))

	queued := tasks.NewQueuedCatalogExport(taskClient, db, exporter, cfg.Export.OutputDir, auditor)
	return queued, taskClient, nil
}

// Run starts the export daemon: an optional task queue that writes pages in
// the background and a cron scheduler that triggers full catalog exports.
func Run(cfg *config.Config, version string) {
	log.Printf("Starting catalog exporter v%s", version)

	if err := CheckOutputDir(cfg.Export.OutputDir); err != nil {
		log.Fatalf("%v", err)
	}
	log.Printf("Writing %s exports to %s", cfg.Export.Type, cfg.Export.OutputDir)

	exporter, err := cfg.Export.NewExporter()
	if err != nil {
		log.Fatalf("Invalid export configuration: %v", err)
	}

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	auditor := audit.NewAuditor(cfg.Export.ManifestDir)
	exportService := services.NewExportService(db, exporter, cfg.Export.OutputDir, db, auditor)

	taskCtx, taskCancel := context.WithCancel(context.Background())
	defer taskCancel()

	catalogExporter, taskClient, err := NewCatalogExporter(cfg, db, exporter, exportService, auditor)
	if err != nil {
		log.Fatalf("Failed to initialize task queue: %v", err)
	}
	if taskClient != nil {
		defer func() {
			if err := taskClient.Close(); err != nil {
				log.Printf("Error closing task client: %v", err)
			}
		}()
		go taskClient.Start(taskCtx)
	}

	schedCtx, schedCancel := context.WithCancel(context.Background())
	defer schedCancel()

	var exportScheduler *scheduler.ExportScheduler
	if cfg.Schedule.Enabled {
		exportScheduler = scheduler.NewExportScheduler(catalogExporter, cfg.Schedule.Schedule)
		if err := exportScheduler.Start(schedCtx); err != nil {
			log.Fatalf("Failed to start export scheduler: %v", err)
		}
	} else {
		log.Printf("Export schedule disabled, running a single export")
		result, err := catalogExporter.ExportAll(schedCtx)
		if err != nil {
			log.Printf("Catalog export failed: %v", err)
		} else {
			log.Printf("Catalog export %s started for %d products", result.RunID, result.Total)
		}
		if taskClient == nil {
			return
		}
	}

	Wait(cfg, func(ctx context.Context) {
		if exportScheduler != nil {
			exportScheduler.Stop()
		}
		if taskClient != nil {
			taskClient.Stop(ctx)
			taskCancel()
		}
	})
}
