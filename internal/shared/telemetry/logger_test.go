package telemetry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInfoAndErrorFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	prev := L()
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(prev) })

	Info("render done", map[string]any{"format": "pdf", "bytes": 120})
	Error("render failed", map[string]any{"err": errors.New("boom")})
	Debug("probe", nil)

	entries := logs.AllUntimed()
	require.Len(t, entries, 3)
	assert.Equal(t, "render done", entries[0].Message)
	assert.Equal(t, map[string]any{"bytes": int64(120), "format": "pdf"}, entries[0].ContextMap())
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "boom", entries[1].ContextMap()["err"])
	assert.Empty(t, entries[2].Context)
}

func TestSetLoggerNil(t *testing.T) {
	prev := L()
	t.Cleanup(func() { SetLogger(prev) })
	SetLogger(nil)
	require.NotNil(t, L())
	Info("discarded", nil)
}

func TestNewLevels(t *testing.T) {
	logger, err := New(false, true)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	logger, err = New(true, false)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
}
