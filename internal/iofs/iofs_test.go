package iofs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDirs(t *testing.T) {
	tmpDir := t.TempDir()

	for range 2 {
		err := EnsureDirs(tmpDir)
		require.NoError(t, err)
	}

	dirs := []string{
		filepath.Join(tmpDir, ".config", "gnplants"),
		filepath.Join(tmpDir, ".cache", "gnplants"),
		filepath.Join(tmpDir, ".local", "share", "gnplants"),
		filepath.Join(tmpDir, ".local", "share", "gnplants", "logs"),
	}
	for _, v := range dirs {
		info, err := os.Stat(v)
		require.NoError(t, err, v)
		assert.True(t, info.IsDir(), v)
		assert.Equal(t, os.FileMode(0755), info.Mode().Perm(), v)
	}
}

func TestTouchDirOverFile(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	err := touchDir(filepath.Join(file, "sub"))
	assert.Error(t, err)
}

func TestEnsureFiles(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, EnsureDirs(tmpDir))

	require.NoError(t, EnsureConfigFile(tmpDir))
	require.NoError(t, EnsureRegionsFile(tmpDir))

	cfgPath := filepath.Join(tmpDir, ".config", "gnplants", "config.yaml")
	data, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, ConfigYAML, string(data))

	regPath := filepath.Join(tmpDir, ".config", "gnplants", "regions.yaml")
	data, err = os.ReadFile(regPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "North Carolina")

	// existing files are not overwritten
	require.NoError(t, os.WriteFile(cfgPath, []byte("log:\n"), 0644))
	require.NoError(t, EnsureConfigFile(tmpDir))
	data, err = os.ReadFile(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "log:\n", string(data))
}
