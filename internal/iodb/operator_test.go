package iodb_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnplants/internal/iodb"
	"github.com/gnames/gnplants/pkg/config"
	"github.com/gnames/gnplants/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteOperator(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}
	ctx := context.Background()
	op := iodb.NewSQLiteOperator(filepath.Join(t.TempDir(), "test.db"))
	_, err := op.HasTables(ctx)
	assert.NotNil(t, err)

	require.Nil(t, op.Connect(ctx))
	defer op.Close()
	assert.Equal(t, "sqlite", op.Driver())
	assert.Equal(t, "SELECT ?", op.Rebind("SELECT ?"))

	has, err := op.HasTables(ctx)
	require.Nil(t, err)
	assert.False(t, has)

	_, err = op.DB().ExecContext(ctx, "CREATE TABLE foo (id INTEGER)")
	require.Nil(t, err)

	exists, err := op.TableExists(ctx, "foo")
	require.Nil(t, err)
	assert.True(t, exists)

	exists, err = op.TableExists(ctx, "bar")
	require.Nil(t, err)
	assert.False(t, exists)

	require.Nil(t, op.DropAllTables(ctx))
	has, err = op.HasTables(ctx)
	require.Nil(t, err)
	assert.False(t, has)
}

func TestNewGallformersOperator(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptHomeDir(t.TempDir())})

	op, err := iodb.NewGallformersOperator(cfg)
	require.Nil(t, err)
	assert.Equal(t, "sqlite", op.Driver())

	cfg.Update([]config.Option{config.OptGallformersDriver("postgres")})
	op, err = iodb.NewGallformersOperator(cfg)
	require.Nil(t, err)
	assert.Equal(t, "postgres", op.Driver())
	assert.Equal(t, "SELECT $1, $2", op.Rebind("SELECT ?, ?"))
	assert.Nil(t, op.DB())

	cfg.Gallformers.Driver = "mysql"
	_, err = iodb.NewGallformersOperator(cfg)
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.DBUnsupportedDriverError, gnErr.Code)
}

func TestSQLiteDropReferencedTables(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}
	ctx := context.Background()
	op := iodb.NewSQLiteOperator(filepath.Join(t.TempDir(), "test.db"))
	require.Nil(t, op.Connect(ctx))
	defer op.Close()

	for _, q := range []string{
		"CREATE TABLE parent (id INTEGER PRIMARY KEY)",
		"CREATE TABLE child (parent_id INTEGER REFERENCES parent(id))",
		"INSERT INTO parent (id) VALUES (1)",
		"INSERT INTO child (parent_id) VALUES (1)",
	} {
		_, err := op.DB().ExecContext(ctx, q)
		require.Nil(t, err)
	}

	require.Nil(t, op.DropAllTables(ctx))
	has, err := op.HasTables(ctx)
	require.Nil(t, err)
	assert.False(t, has)

	// foreign keys are enforced again
	for _, q := range []string{
		"CREATE TABLE parent (id INTEGER PRIMARY KEY)",
		"CREATE TABLE child (parent_id INTEGER REFERENCES parent(id))",
	} {
		_, err = op.DB().ExecContext(ctx, q)
		require.Nil(t, err)
	}
	_, err = op.DB().ExecContext(ctx, "INSERT INTO child (parent_id) VALUES (5)")
	assert.NotNil(t, err)
}
