package iodb

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnplants/pkg/errcode"
)

// ConnectionError is returned when a database cannot be opened.
func ConnectionError(dsn string, err error) error {
	msg := `Cannot connect to database <em>%s</em>

<em>Possible causes:</em>
  - SQLite file directory does not exist
  - PostgreSQL is not running
  - Connection settings are incorrect

<em>How to fix:</em>
  Check <em>plants_db</em> and <em>gallformers</em> sections of config.yaml`

	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: []any{dsn},
		Err:  fmt.Errorf("cannot connect to %s: %w", dsn, err),
	}
}

// NotConnectedError is returned when the operator is used before Connect.
func NotConnectedError() error {
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "Database is not connected",
		Err:  fmt.Errorf("database is not connected"),
	}
}

// UnsupportedDriverError is returned for unknown database drivers.
func UnsupportedDriverError(driver string) error {
	return &gn.Error{
		Code: errcode.DBUnsupportedDriverError,
		Msg:  "Database driver <em>%s</em> is not supported",
		Vars: []any{driver},
		Err:  fmt.Errorf("unsupported driver %q", driver),
	}
}

// TableExistsCheckError is returned when a table check fails.
func TableExistsCheckError(table string, err error) error {
	return &gn.Error{
		Code: errcode.DBTableExistsCheckError,
		Msg:  "Cannot check if table <em>%s</em> exists",
		Vars: []any{table},
		Err:  fmt.Errorf("cannot check table %s: %w", table, err),
	}
}

// QueryTablesError is returned when the list of tables cannot be read.
func QueryTablesError(err error) error {
	return &gn.Error{
		Code: errcode.DBQueryTablesError,
		Msg:  "Cannot get the list of database tables",
		Err:  fmt.Errorf("cannot query tables: %w", err),
	}
}

// DropTableError is returned when a table cannot be dropped.
func DropTableError(table string, err error) error {
	return &gn.Error{
		Code: errcode.DBDropTableError,
		Msg:  "Cannot drop table <em>%s</em>",
		Vars: []any{table},
		Err:  fmt.Errorf("cannot drop table %s: %w", table, err),
	}
}

// TransactionError is returned when a transaction cannot be started or
// committed.
func TransactionError(action string, err error) error {
	return &gn.Error{
		Code: errcode.DBTransactionError,
		Msg:  "Database transaction failed to <em>%s</em>",
		Vars: []any{action},
		Err:  fmt.Errorf("transaction %s failed: %w", action, err),
	}
}
