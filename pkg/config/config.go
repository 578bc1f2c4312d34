// Package config provides configuration management for GNplants.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid
// - All mutations go through Option functions
// - Invalid options are rejected with gn.Warn(), config stays valid
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - PlantsDB: path
//   - Gallformers: driver, path, host, port, user, password, database, ssl_mode
//   - USDA: data_dir, encoding
//   - VASCAN: url, requests_per_second, timeout
//   - Log: level, format, destination
//   - General: jobs_number
//
// Runtime-only fields (CLI flags only):
//   - Export.ReportPath, Import.Regions, Force
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use GNPLANTS_ prefix with underscores for nesting:
//
//	GNPLANTS_PLANTS_DB_PATH=/data/plants.db
//	GNPLANTS_GALLFORMERS_DRIVER=postgres
//	GNPLANTS_USDA_DATA_DIR=/data/usda
//	GNPLANTS_LOG_LEVEL=info
//	GNPLANTS_JOBS_NUMBER=8
package config

import (
	"runtime"
)

// Config represents the complete GNplants configuration.
type Config struct {
	// PlantsDB is the local SQLite database with imported plants.
	PlantsDB PlantsDBConfig `mapstructure:"plants_db" yaml:"plants_db"`

	// Gallformers is the database that receives host ranges.
	Gallformers GallformersConfig `mapstructure:"gallformers" yaml:"gallformers"`

	// USDA contains settings of USDA PLANTS checklists import.
	USDA USDAConfig `mapstructure:"usda" yaml:"usda"`

	// VASCAN contains settings of the VASCAN API client.
	VASCAN VASCANConfig `mapstructure:"vascan" yaml:"vascan"`

	// Import contains runtime settings of import commands.
	Import ImportConfig `mapstructure:"import" yaml:"import"`

	// Export contains runtime settings of export commands.
	Export ExportConfig `mapstructure:"export" yaml:"export"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent workers for parallel operations.
	// Default value is set according to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// Force skips confirmation before destructive operations.
	Force bool

	// HomeDir determines where config, data and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// PlantsDBConfig points to the plants database.
type PlantsDBConfig struct {
	// Path to the SQLite file. Empty value means
	// ~/.local/share/gnplants/plants.db.
	Path string `mapstructure:"path" yaml:"path"`
}

// GallformersConfig contains connection parameters of the Gallformers
// database. It can be either an SQLite file or a PostgreSQL database.
type GallformersConfig struct {
	// Driver is "sqlite" or "postgres".
	Driver string `mapstructure:"driver" yaml:"driver"`

	// Path is the SQLite file, used with "sqlite" driver.
	// Empty value means ~/.local/share/gnplants/gallformers.sqlite.
	Path string `mapstructure:"path" yaml:"path"`

	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`
}

// USDAConfig describes where USDA PLANTS checklists are.
type USDAConfig struct {
	// DataDir contains one CSV file per region, the file name without
	// extension is the region code (for example "NC.csv").
	// Empty value means ~/.local/share/gnplants/usda.
	DataDir string `mapstructure:"data_dir" yaml:"data_dir"`

	// Encoding of CSV files, "utf-8" or "windows-1252".
	Encoding string `mapstructure:"encoding" yaml:"encoding"`
}

// VASCANConfig contains settings of the VASCAN search API client.
type VASCANConfig struct {
	// URL of the search endpoint.
	URL string `mapstructure:"url" yaml:"url"`

	// RequestsPerSecond limits the load on the service.
	RequestsPerSecond int `mapstructure:"requests_per_second" yaml:"requests_per_second"`

	// Timeout of one request in seconds.
	Timeout int `mapstructure:"timeout" yaml:"timeout"`
}

// ImportConfig contains runtime settings for import commands.
type ImportConfig struct {
	// Regions limits USDA import to the given region codes.
	// Empty slice means all CSV files in the data directory.
	Regions []string `mapstructure:"regions" yaml:"regions"`
}

// ExportConfig contains runtime settings for export commands.
type ExportConfig struct {
	// ReportPath is the XLSX file for the match report.
	// Empty means no report.
	ReportPath string `mapstructure:"report_path" yaml:"report_path"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
func New() *Config {
	res := &Config{
		Gallformers: GallformersConfig{
			Driver:   "sqlite",
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Password: "postgres",
			Database: "gallformers",
			SSLMode:  "disable",
		},
		USDA: USDAConfig{
			Encoding: "utf-8",
		},
		VASCAN: VASCANConfig{
			URL:               "https://data.canadensys.net/vascan/api/0.1/search.json",
			RequestsPerSecond: 5,
			Timeout:           30,
		},
		Log: LogConfig{
			Format:      "json",
			Level:       "info",
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}

// PlantsDBPath returns the path to the plants database file.
func (c *Config) PlantsDBPath() string {
	if c.PlantsDB.Path != "" {
		return c.PlantsDB.Path
	}
	return PlantsDBFilePath(c.HomeDir)
}

// GallformersPath returns the path to the Gallformers SQLite file.
func (c *Config) GallformersPath() string {
	if c.Gallformers.Path != "" {
		return c.Gallformers.Path
	}
	return GallformersFilePath(c.HomeDir)
}

// USDADir returns the directory with USDA checklists.
func (c *Config) USDADir() string {
	if c.USDA.DataDir != "" {
		return c.USDA.DataDir
	}
	return USDADir(c.HomeDir)
}
