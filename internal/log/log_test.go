package log_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/hvac-catalog/internal/config"
	"github.com/tuanvumaihuynh/hvac-catalog/internal/log"
	"github.com/tuanvumaihuynh/hvac-catalog/pkg/correlationid"
)

func TestJSONLoggerAddsCorrelationID(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, config.Log{Format: config.LogFormatJSON, Level: slog.LevelInfo})

	ctx := correlationid.NewContext(context.Background(), "abc-123")
	logger.InfoContext(ctx, "product listed", slog.Int("total", 3))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "product listed", rec["msg"])
	assert.Equal(t, "abc-123", rec["correlation_id"])
	assert.EqualValues(t, 3, rec["total"])
}

func TestLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, config.Log{Format: config.LogFormatText, Level: slog.LevelWarn, NoColor: true})

	logger.Info("hidden")
	assert.Empty(t, buf.String())

	logger.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}
