package ioplantdb

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnplants/pkg/errcode"
)

// InsertError is returned when a record cannot be saved to the plants
// database.
func InsertError(table, value string, err error) error {
	return &gn.Error{
		Code: errcode.ImportInsertError,
		Msg:  "Cannot save <em>%s</em> to <em>%s</em>",
		Vars: []any{value, table},
		Err:  fmt.Errorf("insert into %s failed for %q: %w", table, value, err),
	}
}

// QueryError is returned when the plants database cannot be read.
func QueryError(table string, err error) error {
	return &gn.Error{
		Code: errcode.ExportQueryError,
		Msg:  "Cannot read <em>%s</em> from the plants database",
		Vars: []any{table},
		Err:  fmt.Errorf("query of %s failed: %w", table, err),
	}
}
