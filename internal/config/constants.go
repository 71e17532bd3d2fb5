package config

// Default paths
const (
	// DefaultDatabasePath is the default path for the catalog database
	DefaultDatabasePath = "./catalog.db"

	// DefaultOutputDir is where export files are written by default
	DefaultOutputDir = "./export"

	// DefaultManifestDir is where export manifests are written by default
	DefaultManifestDir = "./export/manifests"
)
