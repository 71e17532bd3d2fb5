package tasks

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/mikestefanello/backlite"
)

// Client runs export pages as background tasks on a backlite queue. Task
// state lives in its own SQLite file next to the catalog database.
type Client struct {
	client *backlite.Client
	db     *sql.DB
	config Config

	mu      sync.RWMutex
	started bool
}

// TasksDatabasePath returns the queue database path for a catalog database,
// e.g. ./catalog.db -> ./catalog-tasks.db.
func TasksDatabasePath(catalogDBPath string) string {
	dir, base := filepath.Split(catalogDBPath)
	ext := filepath.Ext(base)
	return filepath.Join(dir, strings.TrimSuffix(base, ext)+"-tasks"+ext)
}

func NewClient(catalogDBPath string, cfg Config) (*Client, error) {
	dsn := TasksDatabasePath(catalogDBPath) + "?_journal=WAL&_timeout=5000&_busy_timeout=5000"
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open tasks database: %w", err)
	}
	db.SetMaxOpenConns(cfg.Workers + 5)
	db.SetMaxIdleConns(cfg.Workers + 2)
	db.SetConnMaxLifetime(time.Hour)

	client, err := backlite.NewClient(backlite.ClientConfig{
		DB:              db,
		NumWorkers:      cfg.Workers,
		ReleaseAfter:    cfg.ReleaseAfter,
		CleanupInterval: cfg.CleanupInterval,
		Logger:          &stdLogger{},
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create backlite client: %w", err)
	}

	if err := client.Install(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to install backlite schema: %w", err)
	}

	return &Client{
		client: client,
		db:     db,
		config: cfg,
	}, nil
}

// Register adds queues. Must be called before Start.
func (c *Client) Register(queues ...backlite.Queue) {
	for _, q := range queues {
		c.client.Register(q)
	}
}

// Start begins processing tasks. Run it in a goroutine and use Stop for a
// graceful shutdown.
func (c *Client) Start(ctx context.Context) {
	c.mu.Lock()
	if c.started {
		c.mu.Unlock()
		return
	}
	c.started = true
	c.mu.Unlock()

	log.Printf("[TASK] Export queue started with %d workers", c.config.Workers)
	c.client.Start(ctx)
}

// Stop waits for running tasks until ctx expires. It reports whether every
// worker finished in time.
func (c *Client) Stop(ctx context.Context) bool {
	c.mu.RLock()
	started := c.started
	c.mu.RUnlock()
	if !started {
		return true
	}

	ok := c.client.Stop(ctx)
	if ok {
		log.Println("[TASK] Export queue stopped")
	} else {
		log.Println("[TASK] Export queue stopped before all pages finished")
	}
	return ok
}

// Close releases the queue database. Call it after Stop.
func (c *Client) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// EnqueueExportPages adds one ExportPageTask per page of a catalog holding
// total products. All pages share runID.
func (c *Client) EnqueueExportPages(runID string, total, perPage int) ([]string, error) {
	if perPage < 1 {
		return nil, fmt.Errorf("items per page must be at least 1, got %d", perPage)
	}
	pages := PlanExportPages(runID, total, perPage)
	if len(pages) == 0 {
		return nil, nil
	}

	batch := make([]backlite.Task, len(pages))
	for i, p := range pages {
		batch[i] = p
	}
	ids, err := c.client.Add(batch...).Save()
	if err != nil {
		return nil, fmt.Errorf("enqueue export pages: %w", err)
	}
	log.Printf("[TASK] Enqueued %d export pages for run %s", len(ids), runID)
	return ids, nil
}

// stdLogger implements backlite.Logger using standard library log.
type stdLogger struct{}

func (l *stdLogger) Info(message string, params ...any) {
	log.Printf("[TASK] "+message, params...)
}

func (l *stdLogger) Error(message string, params ...any) {
	log.Printf("[TASK ERROR] "+message, params...)
}
