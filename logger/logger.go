package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"

	"github.com/pure-golang/mailchannels/logger/devslog"
	"github.com/pure-golang/mailchannels/logger/noop"
	"github.com/pure-golang/mailchannels/logger/stdjson"
)

type Level string
type Provider string
type Output string
type contextKeyT string

var contextKey = contextKeyT("github.com/pure-golang/mailchannels/logger")

const (
	INFO  Level = "info"
	ERROR Level = "error"
	WARN  Level = "warn"
	DEBUG Level = "debug"

	ProviderDevSlog Provider = "dev"      // for dev
	ProviderStdJson Provider = "std_json" // for production
	ProviderNoop    Provider = "noop"     // for unit tests

	OutputStdout Output = "stdout"
	OutputStderr Output = "stderr" // keeps stdout free for command output
)

type Config struct {
	Provider Provider `envconfig:"LOG_PROVIDER" default:"std_json"`
	Level    Level    `envconfig:"LOG_LEVEL" default:"info"`
	Output   Output   `envconfig:"LOG_OUTPUT" default:"stdout"`
}

// NewDefault creates a new instance of slog.Logger by default using Config.
func NewDefault(c Config) *slog.Logger {
	level := convertLevel(c.Level)
	w := convertOutput(c.Output)
	switch c.Provider {
	case ProviderDevSlog:
		return devslog.New(w, level)
	case ProviderNoop:
		return noop.NewNoop()
	case ProviderStdJson:
		fallthrough
	default:
		return stdjson.New(w, level)
	}
}

// InitDefault creates a new instance of slog.Logger and set it by default.
func InitDefault(c Config) {
	slog.SetDefault(NewDefault(c))
	otel.SetErrorHandler(otel.ErrorHandlerFunc(func(err error) {
		slog.Default().Error(err.Error())
	}))
}

// FromContext extracts the logger from ctx, or returns the default one.
func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(contextKey).(*slog.Logger); ok {
		return l
	}

	return slog.Default()
}

// NewContext packs l into ctx.
func NewContext(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey, l)
}

// WithErr return default logger with error.
func WithErr(err error) *slog.Logger {
	return appendErr(slog.Default(), err)
}

// FromContextWithErr extract logger from context and attach error field.
func FromContextWithErr(ctx context.Context, err error) *slog.Logger {
	return appendErr(FromContext(ctx), err)
}

func appendErr(l *slog.Logger, err error) *slog.Logger {
	var stackTracer interface {
		StackTrace() errors.StackTrace
	}

	if errors.As(err, &stackTracer) {
		l = l.With("stack", stackTracer.StackTrace())
	}

	return l.With("error", err.Error())
}

func convertLevel(level Level) slog.Level {
	switch level {
	case INFO:
		return slog.LevelInfo
	case ERROR:
		return slog.LevelError
	case WARN:
		return slog.LevelWarn
	case DEBUG:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

func convertOutput(output Output) io.Writer {
	if output == OutputStderr {
		return os.Stderr
	}
	return os.Stdout
}
