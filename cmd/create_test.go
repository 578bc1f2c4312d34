package cmd

import (
	"context"
	"strings"
	"testing"

	"github.com/gnames/gnplants/internal/ioplantdb"
	"github.com/gnames/gnplants/internal/iotesting"
	"github.com/gnames/gnplants/pkg/config"
	"github.com/gnames/gnplants/pkg/regions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCreateCmd(t *testing.T) {
	cmd := getCreateCmd()
	assert.Equal(t, "create", cmd.Use)
	assert.Contains(t, cmd.Short, "schema")
	assert.NotNil(t, cmd.RunE)

	flag := cmd.Flags().Lookup("force")
	require.NotNil(t, flag)
	assert.Equal(t, "f", flag.Shorthand)
	assert.Equal(t, "false", flag.DefValue)
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		res   bool
	}{
		{"yes\n", true},
		{"Y\n", true},
		{"  yes  \n", true},
		{"y", true},
		{"no\n", false},
		{"\n", false},
		{"", false},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, confirm(strings.NewReader(v.input)), v.input)
	}
}

func TestRunCreate(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}
	ctx := context.Background()
	cfg = iotesting.Config(t)

	require.Nil(t, runCreate(ctx, strings.NewReader("")))

	regionCount := func() int {
		op := iotesting.PlantsDB(t, cfg)
		var n int
		err := op.DB().QueryRowContext(ctx, "SELECT count(*) FROM regions").Scan(&n)
		require.Nil(t, err)
		op.Close()
		return n
	}

	op := iotesting.PlantsDB(t, cfg)
	_, err := ioplantdb.InsertRegion(ctx, op.DB(), regions.Region{
		Code: "NC", Name: "North Carolina", Country: "United States", Type: "state",
	})
	require.Nil(t, err)
	op.Close()

	// refusal keeps data
	require.Nil(t, runCreate(ctx, strings.NewReader("no\n")))
	assert.Equal(t, 1, regionCount())

	// confirmation drops data
	require.Nil(t, runCreate(ctx, strings.NewReader("yes\n")))
	assert.Equal(t, 0, regionCount())

	op = iotesting.PlantsDB(t, cfg)
	_, err = ioplantdb.InsertRegion(ctx, op.DB(), regions.Region{
		Code: "VA", Name: "Virginia", Country: "United States", Type: "state",
	})
	require.Nil(t, err)
	op.Close()

	cfg.Update([]config.Option{config.OptForce(true)})
	require.Nil(t, runCreate(ctx, strings.NewReader("")))
	assert.Equal(t, 0, regionCount())
}
