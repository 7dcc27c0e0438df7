package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_json(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, LoggingFormatJson, slog.LevelDebug)

	logger.Warn("grid rendered", slog.Int("rows", 3))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "WARNING", line["severity"])
	assert.Equal(t, "grid rendered", line["message"])
	assert.Equal(t, float64(3), line["rows"])
}

func TestNewLogger_text(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, LoggingFormatText, slog.LevelInfo)

	logger.Debug("hidden")
	logger.With(slog.String("grid", "products")).Info("grid rendered")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "grid rendered")
	assert.Contains(t, out, "grid=products")
	assert.NotContains(t, out, "msg=")
}

func TestLoggerFromContext(t *testing.T) {
	assert.Equal(t, slog.Default(), LoggerFromContext(context.Background()))

	logger := slog.New(NewLocalDevHandler(&bytes.Buffer{}))
	ctx := StoreLoggerInContext(context.Background(), logger)
	assert.Equal(t, logger, LoggerFromContext(ctx))
}
