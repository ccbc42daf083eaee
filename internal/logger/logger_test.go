package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_Levels(t *testing.T) {
	t.Cleanup(func() { Init(Options{}) })

	var out bytes.Buffer
	Init(Options{Enabled: true, Writer: &out, Level: slog.LevelWarn})

	Debug("hidden")
	Info("hidden")
	Warn("shown", "key", "value")

	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "shown")
	assert.Contains(t, out.String(), "key=value")
}

func TestInit_JSON(t *testing.T) {
	t.Cleanup(func() { Init(Options{}) })

	var out bytes.Buffer
	Init(Options{Enabled: true, Writer: &out, Format: FormatJSON, Level: slog.LevelDebug})
	Debug("decoded", "nodes", 3)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &rec))
	assert.Equal(t, "decoded", rec["msg"])
	assert.Equal(t, float64(3), rec["nodes"])
}

func TestInit_Disabled(t *testing.T) {
	var out bytes.Buffer
	Init(Options{Enabled: false, Writer: &out})
	Error("dropped")
	assert.Empty(t, out.String())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, ParseLevel("chatty"))
}
