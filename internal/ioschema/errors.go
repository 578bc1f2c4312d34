package ioschema

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnplants/pkg/errcode"
)

// NotConnectedError creates an error for when schema
// operation is attempted without database connection.
func NotConnectedError() error {
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "Schema operation attempted without database connection",
		Err:  fmt.Errorf("not connected to database"),
	}
}

// CreateSchemaError creates an error for failures of table or index
// creation.
func CreateSchemaError(table string, err error) error {
	msg := `Failed to create table <em>%s</em>

<em>Possible causes:</em>
  - Plants database file is read-only
  - Plants database file is corrupted

<em>How to fix:</em>
  1. Check permissions of the plants database file
  2. Recreate it: <em>gnplants create --force</em>`

	return &gn.Error{
		Code: errcode.SchemaCreateError,
		Msg:  msg,
		Vars: []any{table},
		Err:  fmt.Errorf("failed to create schema for %s: %w", table, err),
	}
}
