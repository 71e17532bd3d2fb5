package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/mrlokans/catalogexport/internal/export"
	"github.com/mrlokans/catalogexport/internal/utils"
)

type (
	Config struct {
		Export
		Schedule
		Database
		Tasks
		Global
	}

	Export struct {
		Type          string   // "xml" or "csv"
		ItemsPerPage  int      // Products per export file
		CSVProperties []string // Extra property columns for CSV exports
		Usergroup     string   // Usergroup context for CSV flattening
		OutputDir     string
		FilePrefix    string
		ManifestDir   string
	}
	Schedule struct {
		Enabled  bool
		Schedule string // Cron format: "0 * * * *" = hourly
	}
	Database struct {
		Path string
	}
	Tasks struct {
		Enabled         bool
		Workers         int
		ReleaseAfter    time.Duration
		CleanupInterval time.Duration
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
)

// ExportType parses the configured export type.
func (e Export) ExportType() (export.Type, error) {
	return export.ParseType(e.Type)
}

// NewExporter builds the exporter described by the configuration.
func (e Export) NewExporter() (export.Exporter, error) {
	t, err := e.ExportType()
	if err != nil {
		return nil, err
	}
	return export.Create(t, e.ItemsPerPage, e.CSVProperties,
		export.WithUsergroup(e.Usergroup),
		export.WithFilePrefix(utils.SanitizeFilename(e.FilePrefix, export.DefaultFilePrefix)),
	)
}

// splitList parses a comma-separated env value, dropping empty entries.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func NewConfig() *Config {
	return newConfig(viper.New())
}

func newConfig(v *viper.Viper) *Config {
	v.AutomaticEnv()
	v.SetDefault("export_type", "xml")
	v.SetDefault("export_items_per_page", export.DefaultItemsPerPage)
	v.SetDefault("export_csv_properties", "")
	v.SetDefault("export_usergroup", "")
	v.SetDefault("export_output_dir", DefaultOutputDir)
	v.SetDefault("export_file_prefix", export.DefaultFilePrefix)
	v.SetDefault("export_manifest_dir", DefaultManifestDir)
	v.SetDefault("export_schedule_enabled", false)
	v.SetDefault("export_schedule", "0 * * * *") // Hourly at :00
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("shutdown_timeout_in_seconds", 5)

	// Task queue defaults
	v.SetDefault("tasks_enabled", true)
	v.SetDefault("task_workers", 2)
	v.SetDefault("task_release_after", "15m")
	v.SetDefault("task_cleanup_interval", "1h")

	return &Config{
		Export: Export{
			Type:          v.GetString("EXPORT_TYPE"),
			ItemsPerPage:  v.GetInt("EXPORT_ITEMS_PER_PAGE"),
			CSVProperties: splitList(v.GetString("EXPORT_CSV_PROPERTIES")),
			Usergroup:     v.GetString("EXPORT_USERGROUP"),
			OutputDir:     v.GetString("EXPORT_OUTPUT_DIR"),
			FilePrefix:    v.GetString("EXPORT_FILE_PREFIX"),
			ManifestDir:   v.GetString("EXPORT_MANIFEST_DIR"),
		},
		Schedule: Schedule{
			Enabled:  v.GetBool("EXPORT_SCHEDULE_ENABLED"),
			Schedule: v.GetString("EXPORT_SCHEDULE"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Tasks: Tasks{
			Enabled:         v.GetBool("TASKS_ENABLED"),
			Workers:         v.GetInt("TASK_WORKERS"),
			ReleaseAfter:    v.GetDuration("TASK_RELEASE_AFTER"),
			CleanupInterval: v.GetDuration("TASK_CLEANUP_INTERVAL"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
	}
}
