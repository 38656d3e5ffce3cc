package logger_test

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/alkime/selector/internal/config"
	"github.com/alkime/selector/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.LevelDebug, logger.Level(&config.Config{Env: "development", LogLevel: "error"}))
	assert.Equal(t, slog.LevelInfo, logger.Level(&config.Config{Env: config.EnvProduction}))
	assert.Equal(t, slog.LevelWarn, logger.Level(&config.Config{Env: config.EnvProduction, LogLevel: "WARN"}))
	assert.Equal(t, slog.LevelError, logger.Level(&config.Config{Env: config.EnvProduction, LogLevel: "error"}))
}

func TestSetupLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	l := logger.SetupLogger(&config.Config{Env: config.EnvProduction}, &buf, logger.FormatJSON)

	l.Debug("hidden")
	slog.Info("mode selected", "mode", 2)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"mode selected"`)
	assert.Contains(t, buf.String(), `"mode":2`)
}

func TestOutput(t *testing.T) {
	t.Parallel()

	w, err := logger.Output(&config.Config{}, io.Discard)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	path := filepath.Join(t.TempDir(), "selector.log")
	w, err = logger.Output(&config.Config{LogFile: path}, io.Discard)
	require.NoError(t, err)

	_, err = w.Write([]byte("hello\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(b))
}
