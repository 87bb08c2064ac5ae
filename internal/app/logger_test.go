package app

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	t.Run("console only by default", func(t *testing.T) {
		t.Setenv(LogEnvVar, "")
		var stderr bytes.Buffer
		ll := &slog.LevelVar{}

		logger, closer, err := setupLogger(&stderr, ll)
		require.NoError(t, err)
		assert.Nil(t, closer)

		logger.Info("hello")
		assert.Equal(t, "hello\n", stderr.String())
	})

	t.Run("file logging via env var", func(t *testing.T) {
		logPath := filepath.Join(t.TempDir(), "canonfmt.log")
		t.Setenv(LogEnvVar, logPath)
		var stderr bytes.Buffer
		ll := &slog.LevelVar{}

		logger, closer, err := setupLogger(&stderr, ll)
		require.NoError(t, err)
		require.NotNil(t, closer)
		defer closer.Close()

		logger.Info("to both")

		data, err := os.ReadFile(logPath)
		require.NoError(t, err)
		assert.Contains(t, string(data), "to both")
		assert.Contains(t, stderr.String(), "to both")
	})

	t.Run("unwritable log file degrades to console", func(t *testing.T) {
		t.Setenv(LogEnvVar, filepath.Join(t.TempDir(), "no", "such", "dir", "x.log"))
		var stderr bytes.Buffer
		ll := &slog.LevelVar{}

		logger, closer, err := setupLogger(&stderr, ll)
		require.Error(t, err)
		assert.Nil(t, closer)
		require.NotNil(t, logger)

		logger.Info("still works")
		assert.Contains(t, stderr.String(), "still works")
	})
}

func TestConsoleHandler(t *testing.T) {
	t.Parallel()

	newHandler := func(level slog.Level) (*consoleHandler, *bytes.Buffer) {
		var buf bytes.Buffer
		ll := &slog.LevelVar{}
		ll.Set(level)
		return &consoleHandler{w: &buf, level: ll}, &buf
	}

	t.Run("levels get prefixes", func(t *testing.T) {
		t.Parallel()
		h, buf := newHandler(slog.LevelInfo)
		logger := slog.New(h)

		logger.Error("bad thing", "error", "boom")
		logger.Warn("odd thing")
		logger.Info("plain thing")

		out := buf.String()
		assert.Contains(t, out, "Error: bad thing: boom\n")
		assert.Contains(t, out, "Warning: odd thing\n")
		assert.Contains(t, out, "plain thing\n")
	})

	t.Run("attrs shown at debug level", func(t *testing.T) {
		t.Parallel()
		h, buf := newHandler(slog.LevelDebug)
		logger := slog.New(h)
		logger.Debug("scan", "count", 3)
		assert.Contains(t, buf.String(), "scan count=3")
	})

	t.Run("attrs hidden at info level", func(t *testing.T) {
		t.Parallel()
		h, buf := newHandler(slog.LevelInfo)
		logger := slog.New(h)
		logger.Info("scan", "count", 3)
		assert.Equal(t, "scan\n", buf.String())
	})

	t.Run("enabled respects the level var", func(t *testing.T) {
		t.Parallel()
		h, _ := newHandler(slog.LevelInfo)
		assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
		assert.True(t, h.Enabled(context.Background(), slog.LevelInfo))
	})
}
