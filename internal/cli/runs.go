package cli

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mrlokans/catalogexport/internal/config"
	"github.com/mrlokans/catalogexport/internal/database"
)

// RunsCommand lists recently written export pages.
type RunsCommand struct {
	DatabasePath string
	Limit        int
}

// NewRunsCommand creates a new RunsCommand
func NewRunsCommand() *RunsCommand {
	return &RunsCommand{}
}

// ParseFlags parses command line flags
func (cmd *RunsCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("runs", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the catalog database")
	fs.IntVar(&cmd.Limit, "limit", 20, "Number of pages to show")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s runs [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Show the most recent export pages, newest first.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

// Run executes the runs command
func (cmd *RunsCommand) Run() error {
	absDBPath, err := filepath.Abs(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for database: %w", err)
	}

	db, err := database.NewDatabase(absDBPath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	runs, err := db.GetRecentExportRuns(cmd.Limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("ℹ️  No exports recorded yet")
		return nil
	}

	for _, r := range runs {
		line := fmt.Sprintf("%s  %s  %-4s %d+%d  %d/%d items",
			r.CreatedAt.Format("2006-01-02 15:04:05"), r.RunID, r.Format, r.Start, r.Count, r.Exported, r.Total)
		if r.Skipped > 0 {
			line += fmt.Sprintf(" (%d skipped)", r.Skipped)
		}
		if r.ErrorMsg != "" {
			line += "  error: " + r.ErrorMsg
		} else if r.FilePath != "" {
			line += "  " + r.FilePath
		}
		fmt.Println(line)
	}
	return nil
}
