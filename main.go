package main

import (
	"fmt"
	"os"

	"github.com/mrlokans/catalogexport/internal/cli"
	"github.com/mrlokans/catalogexport/internal/config"
	"github.com/mrlokans/catalogexport/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

// command is implemented by every subcommand in internal/cli.
type command interface {
	ParseFlags(args []string) error
	Run() error
}

func main() {
	// If no arguments or "schedule" command, run the export daemon
	if len(os.Args) < 2 || os.Args[1] == "schedule" {
		cfg := config.NewConfig()
		entrypoint.Run(cfg, Version)
		return
	}

	name := os.Args[1]
	args := os.Args[2:]

	var cmd command
	switch name {
	case "export":
		cmd = cli.NewExportCommand(config.NewConfig())
	case "import-products":
		cmd = cli.NewImportProductsCommand()
	case "runs":
		cmd = cli.NewRunsCommand()
	case "version":
		fmt.Printf("catalogexport %s (%s)\n", Version, Commit)
		return
	case "-h", "--help", "help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", name)
		printUsage()
		os.Exit(1)
	}

	if err := cmd.ParseFlags(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  schedule          Run scheduled exports and the page queue (default if no command given)\n")
	fmt.Fprintf(os.Stderr, "  export            Export the catalog once as XML or CSV files\n")
	fmt.Fprintf(os.Stderr, "  import-products   Import products from a JSON file into the catalog\n")
	fmt.Fprintf(os.Stderr, "  runs              List recently written export pages\n")
	fmt.Fprintf(os.Stderr, "  version           Print version information\n")
	fmt.Fprintf(os.Stderr, "\nConfiguration is read from environment variables (EXPORT_TYPE, DATABASE_PATH, ...).\n")
	fmt.Fprintf(os.Stderr, "Use '%s <command> -h' for help on a specific command.\n", os.Args[0])
}
