// Package iologger sets up the global slog logger of GNplants.
package iologger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gnames/gnplants/pkg/config"
)

// LogFile is the name of the log file inside of the log directory.
const LogFile = "gnplants.log"

// Init configures the global slog logger.
// For the "file" destination the log goes to LogFile in logDir. When
// appendLog is false the file is truncated.
func Init(logDir string, cfg config.LogConfig, appendLog bool) error {
	w, err := writer(logDir, cfg.Destination, appendLog)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(handler(w, cfg)))
	return nil
}

func writer(logDir, destination string, appendLog bool) (io.Writer, error) {
	switch destination {
	case "stdout":
		return os.Stdout, nil
	case "file":
		path := filepath.Join(logDir, LogFile)
		flag := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
		if appendLog {
			flag = os.O_CREATE | os.O_WRONLY | os.O_APPEND
		}
		f, err := os.OpenFile(path, flag, 0644)
		if err != nil {
			return nil, CreateLogFileError(path, err)
		}
		return f, nil
	default:
		return os.Stderr, nil
	}
}

func handler(w io.Writer, cfg config.LogConfig) slog.Handler {
	opts := &slog.HandlerOptions{Level: level(cfg.Level)}
	switch cfg.Format {
	case "text", "tint":
		// tint has no dedicated handler yet, it renders as text.
		return slog.NewTextHandler(w, opts)
	default:
		return slog.NewJSONHandler(w, opts)
	}
}

func level(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
