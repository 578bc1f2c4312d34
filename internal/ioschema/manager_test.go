package ioschema_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnplants/internal/iodb"
	"github.com/gnames/gnplants/internal/ioschema"
	"github.com/gnames/gnplants/pkg/errcode"
	"github.com/gnames/gnplants/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}
	ctx := context.Background()
	op := iodb.NewSQLiteOperator(filepath.Join(t.TempDir(), "plants.db"))
	require.Nil(t, op.Connect(ctx))
	defer op.Close()

	mgr := ioschema.NewManager(op)
	require.Nil(t, mgr.Create(ctx))
	// idempotent
	require.Nil(t, mgr.Create(ctx))

	for _, m := range schema.AllModels() {
		exists, err := op.TableExists(ctx, m.TableName())
		require.Nil(t, err)
		assert.True(t, exists, m.TableName())
	}
}

func TestCreateNotConnected(t *testing.T) {
	op := iodb.NewSQLiteOperator(filepath.Join(t.TempDir(), "plants.db"))
	err := ioschema.NewManager(op).Create(context.Background())
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.DBNotConnectedError, gnErr.Code)
}
