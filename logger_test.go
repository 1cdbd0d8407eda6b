package openapisnapshot

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNopLogger(t *testing.T) {
	var logger Logger = NopLogger{}

	// All methods are no-ops and must not panic.
	logger.Debug("debug", "key", "value")
	logger.Info("info")
	logger.Warn("warn", "odd-attrs")
	logger.Error("error", "key", 42)

	withLogger := logger.With("component", "test")
	assert.NotNil(t, withLogger, "With() should return a usable logger")
	withLogger.Info("still a nop")
}

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := NewSlogAdapter(slog.New(handler))

	logger.Debug("debug message", "key", "value")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message", "code", 500)

	out := buf.String()
	assert.Contains(t, out, "debug message")
	assert.Contains(t, out, "key=value")
	assert.Contains(t, out, "info message")
	assert.Contains(t, out, "warn message")
	assert.Contains(t, out, "error message")
	assert.Contains(t, out, "code=500")
}

func TestSlogAdapterWith(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	logger := NewSlogAdapter(slog.New(handler))

	child := logger.With("component", "watch")
	child.Info("cycle complete")

	out := buf.String()
	assert.Contains(t, out, "component=watch")
	assert.Contains(t, out, "cycle complete")
}

func TestNewSlogAdapterNil(t *testing.T) {
	adapter := NewSlogAdapter(nil)
	assert.NotNil(t, adapter, "nil slog.Logger should fall back to slog.Default()")
}
