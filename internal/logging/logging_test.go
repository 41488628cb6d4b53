package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestLevel(t *testing.T) {
	assert.Equal(t, zapcore.InfoLevel, Options{}.Level())
	assert.Equal(t, zapcore.DebugLevel, Options{Verbose: true}.Level())
	assert.Equal(t, zapcore.ErrorLevel, Options{Quiet: true, Verbose: true}.Level())
}

func TestNew_ConsoleFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, Options{})
	log.Debug("hidden")
	log.Warn("lambda clamped", zap.Float64("from", 9), zap.Float64("to", 5.5))
	require.NoError(t, log.Sync())

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.True(t, strings.HasPrefix(out, "WARN\tlambda clamped"), "got %q", out)
	assert.Contains(t, out, `"to": 5.5`)
}

func TestNew_QuietSuppressesWarnings(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, Options{Quiet: true})
	log.Warn("dropped")
	log.Error("kept")
	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, Options{JSON: true})
	log.Info("http request", zap.Int("status", 200))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "http request", rec["msg"])
	assert.Equal(t, "info", rec["level"])
	assert.EqualValues(t, 200, rec["status"])
}
