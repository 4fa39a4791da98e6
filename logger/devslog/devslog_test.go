package devslog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, slog.LevelInfo)

	l.Info("email sent", "to", "a@b.com")

	assert.Contains(t, buf.String(), "email sent")
	assert.Contains(t, buf.String(), "a@b.com")
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, slog.LevelWarn)

	l.Info("hidden")
	assert.Empty(t, buf.String())

	assert.True(t, l.Handler().Enabled(context.Background(), slog.LevelError))
}

func TestNewDefault(t *testing.T) {
	l := NewDefault(slog.LevelDebug)

	require.NotNil(t, l)
	assert.True(t, l.Handler().Enabled(context.Background(), slog.LevelDebug))
}
