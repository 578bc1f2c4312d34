// Package ioregions reads regions.yaml from the config directory.
package ioregions

import (
	"os"

	"github.com/gnames/gnplants/pkg/config"
	"github.com/gnames/gnplants/pkg/regions"
	"gopkg.in/yaml.v3"
)

type ioregions struct {
	path string
}

// New creates a regions loader for the regions.yaml of the config
// directory.
func New(cfg *config.Config) regions.Regions {
	return &ioregions{path: config.RegionsFilePath(cfg.HomeDir)}
}

// NewWithPath creates a regions loader for a given file.
func NewWithPath(path string) regions.Regions {
	return &ioregions{path: path}
}

// Load reads and validates the regions file.
func (r *ioregions) Load() (*regions.RegionsConfig, error) {
	res, err := loadRegionsConfig(r.path)
	if err != nil {
		return nil, RegionsConfigError(r.path, err)
	}
	return res, nil
}

func loadRegionsConfig(path string) (*regions.RegionsConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var res regions.RegionsConfig
	if err = yaml.Unmarshal(data, &res); err != nil {
		return nil, err
	}

	if err = res.Validate(); err != nil {
		return nil, err
	}
	return &res, nil
}
