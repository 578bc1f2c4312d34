// Package db defines database access shared by lifecycle components.
package db

import (
	"context"
	"database/sql"
)

// Operator manages a connection to one database.
//
// Plants database is always SQLite, Gallformers database is either SQLite
// or PostgreSQL. Components write SQL with '?' placeholders and convert it
// with Rebind before execution.
type Operator interface {
	// Connect opens the database and verifies the connection.
	Connect(ctx context.Context) error

	// Close releases the connection.
	Close() error

	// DB returns the connection for queries and transactions.
	// It is nil before Connect.
	DB() *sql.DB

	// Driver returns "sqlite" or "postgres".
	Driver() string

	// Rebind converts '?' placeholders to the syntax of the driver.
	Rebind(query string) string

	// TableExists checks if a table exists in the database.
	TableExists(ctx context.Context, tableName string) (bool, error)

	// HasTables checks if the database has any tables.
	HasTables(ctx context.Context) (bool, error)

	// DropAllTables drops all tables of the database.
	DropAllTables(ctx context.Context) error
}

// Querier is implemented by both *sql.DB and *sql.Tx.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
