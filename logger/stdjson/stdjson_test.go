package stdjson

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, slog.LevelInfo)

	l.Info("email sent", "to", "a@b.com", "status", 202)

	var result map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, "email sent", result["msg"])
	assert.Equal(t, "a@b.com", result["to"])
	assert.Equal(t, float64(202), result["status"])
	assert.Equal(t, "INFO", result["level"])
}

func TestNew_LevelFiltering(t *testing.T) {
	h := New(&bytes.Buffer{}, slog.LevelWarn).Handler()
	ctx := context.Background()

	assert.False(t, h.Enabled(ctx, slog.LevelDebug))
	assert.False(t, h.Enabled(ctx, slog.LevelInfo))
	assert.True(t, h.Enabled(ctx, slog.LevelWarn))
	assert.True(t, h.Enabled(ctx, slog.LevelError))
}

func TestNewDefault(t *testing.T) {
	l := NewDefault(slog.LevelDebug)

	require.NotNil(t, l)
	assert.True(t, l.Handler().Enabled(context.Background(), slog.LevelDebug))
}
