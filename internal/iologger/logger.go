// Package iologger provides slog-based logging initialization and configuration.
package iologger

import (
	"io"
	"log/slog"
	"os"

	"github.com/gnames/gnmesh/pkg/config"
)

// Init initializes the global slog logger with the given configuration.
// Creates log file in the log directory of homeDir if destination is
// "file". If append is true, appends to existing log file, so the file
// keeps records of earlier harvests; otherwise creates fresh file.
// The returned Closer releases the log file, for STDOUT and STDERR it
// does nothing.
func Init(
	homeDir string,
	cfg config.LogConfig,
	append bool,
) (io.Closer, error) {
	var writer io.Writer
	var closer io.Closer = nopCloser{}

	switch cfg.Destination {
	case "stdout":
		writer = os.Stdout
	case "stderr":
		writer = os.Stderr
	case "file":
		logPath := config.LogFilePath(homeDir)
		flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
		if append {
			flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
		}

		file, err := os.OpenFile(logPath, flags, 0644)
		if err != nil {
			return nil, CreateLogFileError(logPath, err)
		}
		writer = file
		closer = file
	default:
		writer = os.Stderr
	}

	slog.SetDefault(slog.New(newHandler(writer, cfg)))
	return closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func newHandler(w io.Writer, cfg config.LogConfig) slog.Handler {
	handlerOpts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
	}

	switch cfg.Format {
	case "json":
		return slog.NewJSONHandler(w, handlerOpts)
	default:
		// "tint" is not colored yet and falls back to text
		return slog.NewTextHandler(w, handlerOpts)
	}
}

// parseLevel converts string level to slog.Level.
func parseLevel(level string) slog.Level {
	switch level {
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
