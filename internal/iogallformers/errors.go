package iogallformers

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnplants/pkg/errcode"
)

// QueryError is returned when the Gallformers database cannot be read.
func QueryError(table string, err error) error {
	return &gn.Error{
		Code: errcode.ExportQueryError,
		Msg:  "Cannot read <em>%s</em> from the Gallformers database",
		Vars: []any{table},
		Err:  fmt.Errorf("gallformers query of %s failed: %w", table, err),
	}
}

// PlaceError is returned when a place cannot be created.
func PlaceError(name string, err error) error {
	return &gn.Error{
		Code: errcode.ExportPlaceError,
		Msg:  "Cannot create place <em>%s</em> in Gallformers",
		Vars: []any{name},
		Err:  fmt.Errorf("cannot create place %q: %w", name, err),
	}
}

// LinkError is returned when a relation between records cannot be
// created.
func LinkError(table string, a, b int64, err error) error {
	return &gn.Error{
		Code: errcode.ExportLinkError,
		Msg:  "Cannot link <em>%d</em> and <em>%d</em> in <em>%s</em>",
		Vars: []any{a, b, table},
		Err:  fmt.Errorf("cannot insert %d-%d into %s: %w", a, b, table, err),
	}
}

// CountryNotFoundError is returned when the place of a country is missing
// from Gallformers.
func CountryNotFoundError(country string) error {
	msg := `Country <em>%s</em> is not found among Gallformers places

<em>How to fix:</em>
  Add the country place to Gallformers or fix the country of the region
  in regions.yaml`

	return &gn.Error{
		Code: errcode.ExportCountryNotFoundError,
		Msg:  msg,
		Vars: []any{country},
		Err:  fmt.Errorf("country place %q not found", country),
	}
}
