package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "gnplants"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/gnplants by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// CacheDir returns the directory path for cache files.
// Returns ~/.cache/gnplants by default.
func CacheDir(homeDir string) string {
	return filepath.Join(homeDir, ".cache", AppName)
}

// DataDir returns the directory path for databases and downloaded data.
// Returns ~/.local/share/gnplants by default.
func DataDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/gnplants/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(DataDir(homeDir), "logs")
}

// USDADir returns the default directory for USDA checklists.
func USDADir(homeDir string) string {
	return filepath.Join(DataDir(homeDir), "usda")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/gnplants/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// RegionsFilePath returns the full path to the regions.yaml file.
func RegionsFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "regions.yaml")
}

// PlantsDBFilePath returns the default location of the plants database.
func PlantsDBFilePath(homeDir string) string {
	return filepath.Join(DataDir(homeDir), "plants.db")
}

// GallformersFilePath returns the default location of the Gallformers
// SQLite database.
func GallformersFilePath(homeDir string) string {
	return filepath.Join(DataDir(homeDir), "gallformers.sqlite")
}
