package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

type ManifestStatus string

const (
	// ManifestStatusQueued marks a run whose pages were handed to the task
	// queue. Pages list the planned files; Exported is not known yet.
	ManifestStatusQueued    ManifestStatus = "queued"
	ManifestStatusCompleted ManifestStatus = "completed"
	ManifestStatusFailed    ManifestStatus = "failed"
)

// Manifest describes one full catalog export so downstream jobs can pick up
// every page file it produced.
type Manifest struct {
	RunID         string         `json:"run_id"`
	Format        string         `json:"format"`
	Status        ManifestStatus `json:"status"`
	StartedAt     time.Time      `json:"started_at"`
	FinishedAt    *time.Time     `json:"finished_at,omitempty"`
	TotalItems    int            `json:"total_items"`
	ItemsExported int            `json:"items_exported"`
	ItemsSkipped  int            `json:"items_skipped"`
	Pages         []ManifestPage `json:"pages"`
	Error         string         `json:"error,omitempty"`
}

type ManifestPage struct {
	Start    int    `json:"start"`
	Count    int    `json:"count"`
	Exported int    `json:"exported"`
	FilePath string `json:"file_path"`
}

type Auditor struct {
	AuditDir string
}

func NewAuditor(auditDir string) *Auditor {
	return &Auditor{
		AuditDir: auditDir,
	}
}

// SaveManifest writes the manifest as export-<run id>.json and returns the
// file path.
func (a *Auditor) SaveManifest(m Manifest) (string, error) {
	if m.RunID == "" {
		m.RunID = uuid.NewString()
	}
	filename := fmt.Sprintf("export-%s.json", m.RunID)
	if err := a.writeJSON(filename, m); err != nil {
		return "", err
	}
	return filepath.Join(a.AuditDir, filename), nil
}

func (a *Auditor) writeJSON(filename string, data any) error {
	if err := a.ensureAuditDir(); err != nil {
		return fmt.Errorf("failed to ensure audit directory: %w", err)
	}

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal data to JSON: %w", err)
	}

	if err := os.WriteFile(filepath.Join(a.AuditDir, filename), jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write audit file: %w", err)
	}
	return nil
}

// ensureAuditDir creates the audit directory if it doesn't exist
func (a *Auditor) ensureAuditDir() error {
	if _, err := os.Stat(a.AuditDir); os.IsNotExist(err) {
		if err := os.MkdirAll(a.AuditDir, 0755); err != nil {
			return fmt.Errorf("failed to create audit directory: %w", err)
		}
	}
	return nil
}
