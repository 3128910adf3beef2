package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marsdome/internal/config"
	"marsdome/internal/platform/logger"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logger.ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelInfo, logger.ParseLevel("info"))
	assert.Equal(t, slog.LevelWarn, logger.ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, logger.ParseLevel("error"))
	assert.Equal(t, slog.LevelWarn, logger.ParseLevel("bogus"))
}

func TestNew_JSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(&buf, config.LogConfig{Level: "info", Format: "json"})

	l.Debug("hidden")
	l.Info("calculated", "area_m2", 157.08)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "calculated", entry["msg"])
	assert.Equal(t, 157.08, entry["area_m2"])
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(&buf, config.LogConfig{Level: "warn", Format: "text"})

	l.Info("hidden")
	l.Warn("fallback material", "requested", "wood")

	assert.Contains(t, buf.String(), "msg=\"fallback material\"")
	assert.Contains(t, buf.String(), "requested=wood")
	assert.NotContains(t, buf.String(), "hidden")
}
