package logger

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pure-golang/mailchannels/logger/noop"
)

func TestNewDefault_AllProviders(t *testing.T) {
	providers := []Provider{ProviderDevSlog, ProviderStdJson, ProviderNoop, Provider(""), Provider("invalid")}

	for _, provider := range providers {
		l := NewDefault(Config{Provider: provider, Level: INFO})
		assert.NotNil(t, l, "provider: %s", provider)
	}
}

func TestNewDefault_Level(t *testing.T) {
	l := NewDefault(Config{Provider: ProviderStdJson, Level: WARN})

	assert.False(t, l.Handler().Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, l.Handler().Enabled(context.Background(), slog.LevelWarn))
}

func TestInitDefault_SetsGlobalLogger(t *testing.T) {
	original := slog.Default()
	defer slog.SetDefault(original)

	InitDefault(Config{Provider: ProviderNoop, Level: DEBUG})

	assert.NotSame(t, original, slog.Default())
}

func TestFromContext(t *testing.T) {
	t.Run("logger in context", func(t *testing.T) {
		l := noop.NewNoop()
		ctx := NewContext(context.Background(), l)

		assert.Same(t, l, FromContext(ctx))
	})

	t.Run("falls back to default", func(t *testing.T) {
		assert.Same(t, slog.Default(), FromContext(context.Background()))
	})

	t.Run("latest wins", func(t *testing.T) {
		first, second := noop.NewNoop(), noop.NewNoop()
		ctx := NewContext(NewContext(context.Background(), first), second)

		assert.Same(t, second, FromContext(ctx))
	})
}

func TestFromContextWithErr(t *testing.T) {
	var buf bytes.Buffer
	ctx := NewContext(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))

	FromContextWithErr(ctx, errors.New("delivery failed")).Error("send")

	assert.Contains(t, buf.String(), `"error":"delivery failed"`)
	assert.Contains(t, buf.String(), `"stack"`)
}

func TestWithErr_PlainError(t *testing.T) {
	original := slog.Default()
	defer slog.SetDefault(original)

	var buf bytes.Buffer
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))

	WithErr(os.ErrNotExist).Error("load")

	assert.Contains(t, buf.String(), `"error":"file does not exist"`)
	assert.NotContains(t, buf.String(), `"stack"`)
}

func TestConvertLevel(t *testing.T) {
	testCases := map[Level]slog.Level{
		INFO:             slog.LevelInfo,
		ERROR:            slog.LevelError,
		WARN:             slog.LevelWarn,
		DEBUG:            slog.LevelDebug,
		Level(""):        slog.LevelInfo,
		Level("unknown"): slog.LevelInfo,
	}

	for in, want := range testCases {
		assert.Equal(t, want, convertLevel(in), "level %q", in)
	}
}

func TestConvertOutput(t *testing.T) {
	assert.Same(t, os.Stderr, convertOutput(OutputStderr))
	assert.Same(t, os.Stdout, convertOutput(OutputStdout))
	assert.Same(t, os.Stdout, convertOutput(Output("")))
	require.NotNil(t, convertOutput(Output("file")))
}
