// Package iofs creates directories and default configuration files of
// GNplants.
package iofs

import (
	_ "embed"
	"os"

	"github.com/gnames/gnplants/pkg/config"
)

//go:embed config.yaml
var ConfigYAML string

//go:embed regions.yaml
var RegionsYAML string

// EnsureDirs creates config, cache, data and log directories.
func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.CacheDir(homeDir),
		config.DataDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

// EnsureDir creates a directory if it does not exist.
func EnsureDir(dir string) error {
	return touchDir(dir)
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}
	return nil
}

// EnsureConfigFile writes the default config.yaml unless it exists.
func EnsureConfigFile(homeDir string) error {
	return ensureFile(config.ConfigFilePath(homeDir), ConfigYAML)
}

// EnsureRegionsFile writes the default regions.yaml unless it exists.
func EnsureRegionsFile(homeDir string) error {
	return ensureFile(config.RegionsFilePath(homeDir), RegionsYAML)
}

func ensureFile(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return CopyFileError(path, err)
	}
	return nil
}
