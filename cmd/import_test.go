package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetImportCmd(t *testing.T) {
	cmd := getImportCmd()
	assert.Equal(t, "import", cmd.Use)

	usda, _, err := cmd.Find([]string{"usda"})
	require.Nil(t, err)
	assert.Equal(t, "usda", usda.Name())
	for _, v := range []string{"regions", "usda-dir", "encoding"} {
		assert.NotNil(t, usda.Flags().Lookup(v), v)
	}
	assert.Equal(t, "r", usda.Flags().Lookup("regions").Shorthand)

	vascan, _, err := cmd.Find([]string{"vascan"})
	require.Nil(t, err)
	assert.Equal(t, "vascan", vascan.Name())
	assert.NotNil(t, vascan.Flags().Lookup("rps"))
}

func TestGetExportCmd(t *testing.T) {
	cmd := getExportCmd()
	assert.Equal(t, "export", cmd.Use)

	usda, _, err := cmd.Find([]string{"usda"})
	require.Nil(t, err)
	flag := usda.Flags().Lookup("report")
	require.NotNil(t, flag)
	assert.Equal(t, "", flag.DefValue)

	vascan, _, err := cmd.Find([]string{"vascan"})
	require.Nil(t, err)
	assert.NotNil(t, vascan.RunE)
}
