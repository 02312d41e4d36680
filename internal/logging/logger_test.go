package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebugEnabled(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{"empty", "", false},
		{"one", "1", true},
		{"true", "true", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(DebugEnv, tt.value)
			assert.Equal(t, tt.expected, DebugEnabled())
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"verbose", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestNew_Format(t *testing.T) {
	t.Setenv(DebugEnv, "")

	var buf bytes.Buffer
	New("INFO", "json", &buf).Info("hello", "answer", 42)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "hello", record["msg"])
	assert.Equal(t, float64(42), record["answer"])

	buf.Reset()
	New("INFO", "text", &buf).Info("hello", "answer", 42)
	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "answer=42")
}

func TestNew_Level(t *testing.T) {
	t.Setenv(DebugEnv, "")

	var buf bytes.Buffer
	log := New("ERROR", "text", &buf)
	log.Info("hidden")
	assert.Empty(t, buf.String())

	log.Error("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_DebugEnvOverridesLevel(t *testing.T) {
	t.Setenv(DebugEnv, "1")

	var buf bytes.Buffer
	New("ERROR", "text", &buf).Debug("visible")
	assert.Contains(t, buf.String(), "visible")
}
