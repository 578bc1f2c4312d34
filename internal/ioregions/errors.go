package ioregions

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnplants/pkg/errcode"
)

// RegionsConfigError creates an error for when regions.yaml
// cannot be loaded.
func RegionsConfigError(path string, err error) error {
	msg := `Cannot load regions configuration

<em>Configuration file:</em> %s

<em>Possible causes:</em>
  - Invalid YAML format
  - Region without code, name or country
  - Duplicate region codes

<em>How to fix:</em>
  1. Check the file: <em>less %s</em>
  2. Remove it to get the default one on the next run`

	return &gn.Error{
		Code: errcode.RegionsConfigError,
		Msg:  msg,
		Vars: []any{path, path},
		Err:  fmt.Errorf("failed to load regions config: %w", err),
	}
}
