package iologger_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gnplants/internal/iologger"
	"github.com/gnames/gnplants/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitFile(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}
	dir := t.TempDir()
	cfg := config.LogConfig{Format: "json", Level: "info", Destination: "file"}

	err := iologger.Init(dir, cfg, false)
	require.Nil(t, err)
	slog.Info("first message")
	slog.Debug("hidden message")

	err = iologger.Init(dir, cfg, true)
	require.Nil(t, err)
	slog.Info("second message")

	data, err := os.ReadFile(filepath.Join(dir, iologger.LogFile))
	require.Nil(t, err)
	assert.Contains(t, string(data), "first message")
	assert.Contains(t, string(data), "second message")
	assert.NotContains(t, string(data), "hidden message")

	err = iologger.Init(dir, cfg, false)
	require.Nil(t, err)
	data, err = os.ReadFile(filepath.Join(dir, iologger.LogFile))
	require.Nil(t, err)
	assert.NotContains(t, string(data), "first message")
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
}

func TestInitBadDir(t *testing.T) {
	cfg := config.LogConfig{Format: "text", Level: "debug", Destination: "file"}
	err := iologger.Init(filepath.Join(t.TempDir(), "missing"), cfg, false)
	assert.NotNil(t, err)
}
