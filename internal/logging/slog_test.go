package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/bucketidx/types"
)

func newBufferLogger(level slog.Level) (*SlogLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	handler := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: level})

	return NewSlog(slog.New(handler)), buf
}

func TestSlogLogger_ImplementsInterface(t *testing.T) {
	var _ types.Logger = (*SlogLogger)(nil)
}

func TestNewSlogDefault(t *testing.T) {
	logger := NewSlogDefault()

	require.NotNil(t, logger)
	require.NotNil(t, logger.logger)
}

func TestSlogLogger_Debug(t *testing.T) {
	logger, buf := newBufferLogger(slog.LevelDebug)

	logger.Debug("bootstrapping partition", "partition", "dt=2026-08-31")

	output := buf.String()
	assert.Contains(t, output, "bootstrapping partition")
	assert.Contains(t, output, "partition=dt=2026-08-31")
	assert.Contains(t, output, "level=DEBUG")
}

func TestSlogLogger_Info(t *testing.T) {
	logger, buf := newBufferLogger(slog.LevelInfo)

	logger.Info("router started", "taskId", 0)

	output := buf.String()
	assert.Contains(t, output, "router started")
	assert.Contains(t, output, "taskId=0")
	assert.Contains(t, output, "level=INFO")
}

func TestSlogLogger_WarnAndError(t *testing.T) {
	logger, buf := newBufferLogger(slog.LevelDebug)

	logger.Warn("hook failed", "err", "boom")
	logger.Error("listing failed", "partition", "p1")

	output := buf.String()
	assert.Contains(t, output, "level=WARN")
	assert.Contains(t, output, "hook failed")
	assert.Contains(t, output, "level=ERROR")
	assert.Contains(t, output, "listing failed")
}

func TestSlogLogger_DebugFilteredByLevel(t *testing.T) {
	logger, buf := newBufferLogger(slog.LevelInfo)

	logger.Debug("should not appear")

	assert.Empty(t, buf.String())
}

func TestNopLogger(t *testing.T) {
	logger := NewNop()

	require.NotPanics(t, func() {
		logger.Debug("msg", "k", "v")
		logger.Info("msg")
		logger.Warn("msg")
		logger.Error("msg")
		logger.Fatal("msg") // NopLogger.Fatal must not exit
	})
}
