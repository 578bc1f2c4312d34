// Package iodb implements db.Operator for SQLite (modernc.org/sqlite) and
// PostgreSQL (pgxpool). This is an impure I/O package that implements
// contracts defined in pkg/.
package iodb

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/gnames/gnplants/pkg/config"
	"github.com/gnames/gnplants/pkg/db"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// NewPlantsOperator creates an operator for the plants database
// (without connecting).
func NewPlantsOperator(cfg *config.Config) db.Operator {
	return NewSQLiteOperator(cfg.PlantsDBPath())
}

// NewGallformersOperator creates an operator for the Gallformers database
// according to its driver (without connecting).
func NewGallformersOperator(cfg *config.Config) (db.Operator, error) {
	switch cfg.Gallformers.Driver {
	case "sqlite":
		return NewSQLiteOperator(cfg.GallformersPath()), nil
	case "postgres":
		return NewPgxOperator(cfg.Gallformers), nil
	default:
		return nil, UnsupportedDriverError(cfg.Gallformers.Driver)
	}
}

// sqliteOperator implements db.Operator for an SQLite file.
type sqliteOperator struct {
	path string
	db   *sql.DB
}

// NewSQLiteOperator creates a new SQLite operator (without connecting).
func NewSQLiteOperator(path string) db.Operator {
	return &sqliteOperator{path: path}
}

// Connect opens the SQLite file, creating it if necessary.
func (s *sqliteOperator) Connect(ctx context.Context) error {
	dsn := s.path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return ConnectionError(s.path, err)
	}
	// SQLite allows only one writer.
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		conn.Close()
		return ConnectionError(s.path, err)
	}
	s.db = conn
	return nil
}

func (s *sqliteOperator) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *sqliteOperator) DB() *sql.DB {
	return s.db
}

func (s *sqliteOperator) Driver() string {
	return "sqlite"
}

func (s *sqliteOperator) Rebind(query string) string {
	return query
}

func (s *sqliteOperator) TableExists(
	ctx context.Context,
	tableName string,
) (bool, error) {
	if s.db == nil {
		return false, NotConnectedError()
	}
	q := `SELECT EXISTS (
		SELECT 1 FROM sqlite_master WHERE type = 'table' AND name = ?
	)`
	var exists bool
	if err := s.db.QueryRowContext(ctx, q, tableName).Scan(&exists); err != nil {
		return false, TableExistsCheckError(tableName, err)
	}
	return exists, nil
}

func (s *sqliteOperator) HasTables(ctx context.Context) (bool, error) {
	tables, err := s.tables(ctx)
	if err != nil {
		return false, err
	}
	return len(tables) > 0, nil
}

func (s *sqliteOperator) DropAllTables(ctx context.Context) error {
	tables, err := s.tables(ctx)
	if err != nil {
		return err
	}

	// Tables are dropped in any order, references must not block it.
	if _, err = s.db.ExecContext(ctx, "PRAGMA foreign_keys = OFF"); err != nil {
		return DropTableError("", err)
	}
	defer s.db.ExecContext(ctx, "PRAGMA foreign_keys = ON")

	for _, table := range tables {
		q := fmt.Sprintf("DROP TABLE IF EXISTS %q", table)
		if _, err = s.db.ExecContext(ctx, q); err != nil {
			return DropTableError(table, err)
		}
	}
	return nil
}

func (s *sqliteOperator) tables(ctx context.Context) ([]string, error) {
	if s.db == nil {
		return nil, NotConnectedError()
	}
	q := `SELECT name FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%'`
	return queryTables(ctx, s.db, q)
}

// pgxOperator implements db.Operator interface using
// pgxpool for connection pooling.
type pgxOperator struct {
	cfg  config.GallformersConfig
	pool *pgxpool.Pool
	db   *sql.DB
}

// NewPgxOperator creates a new PostgreSQL operator (without connecting).
func NewPgxOperator(cfg config.GallformersConfig) db.Operator {
	return &pgxOperator{cfg: cfg}
}

// Connect establishes a connection pool to PostgreSQL and wraps it into
// database/sql.
func (p *pgxOperator) Connect(ctx context.Context) error {
	cfg := p.cfg
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.Database,
		cfg.SSLMode,
	)
	display := fmt.Sprintf("%s:%d/%s", cfg.Host, cfg.Port, cfg.Database)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return ConnectionError(display, err)
	}
	poolConfig.MaxConns = 10
	poolConfig.MinConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return ConnectionError(display, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return ConnectionError(display, err)
	}

	p.pool = pool
	p.db = stdlib.OpenDBFromPool(pool)
	return nil
}

// Close releases all database connections.
func (p *pgxOperator) Close() error {
	if p.db != nil {
		p.db.Close()
	}
	if p.pool != nil {
		p.pool.Close()
	}
	return nil
}

func (p *pgxOperator) DB() *sql.DB {
	return p.db
}

func (p *pgxOperator) Driver() string {
	return "postgres"
}

// Rebind converts '?' placeholders to '$1', '$2'...
func (p *pgxOperator) Rebind(query string) string {
	return rebindDollar(query)
}

func (p *pgxOperator) TableExists(
	ctx context.Context,
	tableName string,
) (bool, error) {
	if p.db == nil {
		return false, NotConnectedError()
	}
	q := `SELECT EXISTS (
		SELECT FROM information_schema.tables
		WHERE table_schema = 'public' AND table_name = $1
	)`
	var exists bool
	if err := p.db.QueryRowContext(ctx, q, tableName).Scan(&exists); err != nil {
		return false, TableExistsCheckError(tableName, err)
	}
	return exists, nil
}

func (p *pgxOperator) HasTables(ctx context.Context) (bool, error) {
	tables, err := p.tables(ctx)
	if err != nil {
		return false, err
	}
	return len(tables) > 0, nil
}

func (p *pgxOperator) DropAllTables(ctx context.Context) error {
	tables, err := p.tables(ctx)
	if err != nil {
		return err
	}
	for _, table := range tables {
		q := fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", table)
		if _, err := p.db.ExecContext(ctx, q); err != nil {
			return DropTableError(table, err)
		}
	}
	return nil
}

func (p *pgxOperator) tables(ctx context.Context) ([]string, error) {
	if p.db == nil {
		return nil, NotConnectedError()
	}
	q := `SELECT tablename FROM pg_tables WHERE schemaname = 'public'`
	return queryTables(ctx, p.db, q)
}

func queryTables(ctx context.Context, conn *sql.DB, q string) ([]string, error) {
	rows, err := conn.QueryContext(ctx, q)
	if err != nil {
		return nil, QueryTablesError(err)
	}
	defer rows.Close()

	var res []string
	for rows.Next() {
		var table string
		if err := rows.Scan(&table); err != nil {
			return nil, QueryTablesError(err)
		}
		res = append(res, table)
	}
	if err := rows.Err(); err != nil {
		return nil, QueryTablesError(err)
	}
	return res, nil
}

// rebindDollar replaces '?' outside of string literals with numbered
// placeholders.
func rebindDollar(query string) string {
	var sb strings.Builder
	var n int
	var quoted bool
	for _, r := range query {
		switch {
		case r == '\'':
			quoted = !quoted
		case r == '?' && !quoted:
			n++
			sb.WriteString("$" + strconv.Itoa(n))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
