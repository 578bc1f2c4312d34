// Package regions describes geographic regions used for plant ranges.
//
// Regions are configured in regions.yaml. USDA checklists are named after
// region codes ("NC.csv"), VASCAN distributions refer to them by locality
// codes, and every region becomes a Gallformers place linked to the place
// of its country.
package regions

import (
	"fmt"
	"strings"
)

// Regions loads the regions configuration.
type Regions interface {
	Load() (*RegionsConfig, error)
}

// RegionsConfig represents the content of regions.yaml.
type RegionsConfig struct {
	// Regions is the list of known regions.
	Regions []Region `yaml:"regions"`

	byCode map[string]Region
}

// Region is a state, province or territory.
type Region struct {
	// Code is a short unique code, for example "NC" or "QC".
	Code string `yaml:"code"`

	// Name is the place name used in Gallformers.
	Name string `yaml:"name"`

	// Country is the name of the parent place.
	Country string `yaml:"country"`

	// Type is the Gallformers place type, usually "state" or "province".
	Type string `yaml:"type"`

	// Aliases are alternative codes, for example VASCAN locality IDs.
	Aliases []string `yaml:"aliases,omitempty"`
}

// Validate checks the configuration, applies defaults and builds the
// code index. Codes are case-insensitive.
func (c *RegionsConfig) Validate() error {
	if len(c.Regions) == 0 {
		return fmt.Errorf("no regions specified in configuration")
	}

	c.byCode = make(map[string]Region, len(c.Regions))
	for i := range c.Regions {
		r := &c.Regions[i]
		if err := r.validate(); err != nil {
			return fmt.Errorf("region %d: %w", i+1, err)
		}
		codes := append([]string{r.Code}, r.Aliases...)
		for _, code := range codes {
			code = normCode(code)
			if _, ok := c.byCode[code]; ok {
				return fmt.Errorf("duplicate region code '%s'", code)
			}
			c.byCode[code] = *r
		}
	}
	return nil
}

func (r *Region) validate() error {
	r.Code = strings.TrimSpace(r.Code)
	r.Name = strings.TrimSpace(r.Name)
	r.Country = strings.TrimSpace(r.Country)
	r.Type = strings.TrimSpace(r.Type)

	if r.Code == "" {
		return fmt.Errorf("code is required")
	}
	if r.Name == "" {
		return fmt.Errorf("name is required for '%s'", r.Code)
	}
	if r.Country == "" {
		return fmt.Errorf("country is required for '%s'", r.Code)
	}
	if r.Type == "" {
		r.Type = "state"
	}
	return nil
}

// Lookup finds a region by its code or alias.
func (c *RegionsConfig) Lookup(code string) (Region, bool) {
	res, ok := c.byCode[normCode(code)]
	return res, ok
}

// Countries returns unique country names in the order of appearance.
func (c *RegionsConfig) Countries() []string {
	var res []string
	seen := make(map[string]struct{})
	for _, v := range c.Regions {
		if _, ok := seen[v.Country]; ok {
			continue
		}
		seen[v.Country] = struct{}{}
		res = append(res, v.Country)
	}
	return res
}

func normCode(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
