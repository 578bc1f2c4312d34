// Package ioschema implements SchemaManager interface for the plants
// database. This is an impure I/O package that executes DDL generated by
// pkg/schema.
package ioschema

import (
	"context"
	"log/slog"

	"github.com/gnames/gnplants/pkg/db"
	"github.com/gnames/gnplants/pkg/lifecycle"
	"github.com/gnames/gnplants/pkg/schema"
)

// manager implements the lifecycle.SchemaManager interface.
type manager struct {
	operator db.Operator
}

// NewManager creates a new SchemaManager.
func NewManager(op db.Operator) lifecycle.SchemaManager {
	return &manager{operator: op}
}

// Create creates tables and indices of the plants database in one
// transaction.
func (m *manager) Create(ctx context.Context) error {
	conn := m.operator.DB()
	if conn == nil {
		return NotConnectedError()
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return CreateSchemaError("", err)
	}
	defer tx.Rollback()

	for _, model := range schema.AllModels() {
		table := model.TableName()
		if _, err = tx.ExecContext(ctx, model.TableDDL()); err != nil {
			return CreateSchemaError(table, err)
		}
		for _, idx := range model.IndexDDL() {
			if _, err = tx.ExecContext(ctx, idx); err != nil {
				return CreateSchemaError(table, err)
			}
		}
		slog.Debug("Table is ready", "table", table)
	}

	if err = tx.Commit(); err != nil {
		return CreateSchemaError("", err)
	}
	return nil
}
