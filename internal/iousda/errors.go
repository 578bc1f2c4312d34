package iousda

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnplants/pkg/errcode"
)

// NotConnectedError is returned when import starts without a connection
// to the plants database.
func NotConnectedError() error {
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "USDA import attempted without plants database connection",
		Err:  fmt.Errorf("not connected to plants database"),
	}
}

// NoFilesError is returned when the USDA directory has no checklists to
// import.
func NoFilesError(dir string, regions []string) error {
	msg := `No USDA checklists found

<em>Directory:</em> %s
<em>Regions:</em> %v

<em>How to fix:</em>
  1. Download state checklists from USDA PLANTS as CSV files
  2. Name each file by its region code, for example NC.csv`

	return &gn.Error{
		Code: errcode.ImportNoFilesError,
		Msg:  msg,
		Vars: []any{dir, regions},
		Err:  fmt.Errorf("no CSV files in %s for regions %v", dir, regions),
	}
}

// ReadCSVError is returned when a checklist cannot be read.
func ReadCSVError(path string, err error) error {
	return &gn.Error{
		Code: errcode.ImportReadCSVError,
		Msg:  "Cannot read USDA checklist <em>%s</em>",
		Vars: []any{path},
		Err:  fmt.Errorf("cannot read %s: %w", path, err),
	}
}

// MissingColumnError is returned when a checklist has no column with
// scientific names.
func MissingColumnError(path, column string) error {
	return &gn.Error{
		Code: errcode.ImportMissingColumnError,
		Msg:  "Checklist <em>%s</em> has no <em>%s</em> column",
		Vars: []any{path, column},
		Err:  fmt.Errorf("column %q not found in %s", column, path),
	}
}

// RegionUnknownError is returned when a checklist file name is not a
// region code from regions.yaml.
func RegionUnknownError(code, path string) error {
	msg := `Unknown region <em>%s</em> for checklist %s

<em>How to fix:</em>
  Add the region to regions.yaml or rename the file`

	return &gn.Error{
		Code: errcode.RegionUnknownError,
		Msg:  msg,
		Vars: []any{code, path},
		Err:  fmt.Errorf("region %q of %s is not in regions.yaml", code, path),
	}
}

// AllFilesFailedError is returned when none of the checklists was
// imported.
func AllFilesFailedError(failed int) error {
	return &gn.Error{
		Code: errcode.ImportAllFilesFailedError,
		Msg:  "All <em>%d</em> USDA checklists failed to import",
		Vars: []any{failed},
		Err:  fmt.Errorf("all %d checklists failed", failed),
	}
}
