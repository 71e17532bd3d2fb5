package entities

import "time"

type ExportRunStatus string

const (
	ExportRunStatusSuccess ExportRunStatus = "success"
	ExportRunStatusFailed  ExportRunStatus = "failed"
)

// ExportRun records one page written by the exporter.
type ExportRun struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	RunID     string          `gorm:"index;size:36" json:"run_id"` // Shared by all pages of one full export
	Format    string          `gorm:"size:8" json:"format"`
	Start     int             `json:"start"`
	Count     int             `json:"count"`
	Total     int             `json:"total"`
	Exported  int             `json:"exported"` // Items actually written, may be below Count
	Skipped   int             `json:"skipped"`
	FilePath  string          `gorm:"size:1024" json:"file_path,omitempty"`
	Status    ExportRunStatus `gorm:"size:20" json:"status"`
	ErrorMsg  string          `gorm:"size:500" json:"error_msg,omitempty"`
	CreatedAt time.Time       `gorm:"index" json:"created_at"`
}

func (ExportRun) TableName() string {
	return "export_runs"
}
