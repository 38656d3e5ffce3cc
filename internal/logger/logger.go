package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alkime/selector/internal/config"
)

// Format selects the slog handler.
type Format int

const (
	// FormatText is for interactive commands.
	FormatText Format = iota
	// FormatJSON is for the server.
	FormatJSON
)

// Level resolves the log level. Development always logs debug.
func Level(cfg *config.Config) slog.Level {
	if cfg.Env == "development" {
		return slog.LevelDebug
	}

	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SetupLogger configures structured logging to w and installs it as the default.
func SetupLogger(cfg *config.Config, w io.Writer, format Format) *slog.Logger {
	//nolint:exhaustruct // Using default values for other HandlerOptions fields
	opts := &slog.HandlerOptions{
		Level: Level(cfg),
	}

	var handler slog.Handler
	if format == FormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}

// Output opens cfg.LogFile for appending, or returns fallback when it is unset.
// The terminal UI owns stdout, so it passes io.Discard.
func Output(cfg *config.Config, fallback io.Writer) (io.WriteCloser, error) {
	if cfg.LogFile == "" {
		return nopCloser{fallback}, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
