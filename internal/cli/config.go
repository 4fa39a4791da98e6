package cli

import (
	"github.com/pkg/errors"

	"github.com/pure-golang/mailchannels/env"
	"github.com/pure-golang/mailchannels/logger"
	"github.com/pure-golang/mailchannels/mail/mailchannels"
	"github.com/pure-golang/mailchannels/metrics"
	"github.com/pure-golang/mailchannels/tracing/otlp"
)

// Config gathers every environment driven setting of the command.
type Config struct {
	Logger  logger.Config
	Mail    mailchannels.Config
	Metrics metrics.Config
	Tracing otlp.Config
}

// LoadConfig loads envFiles, then fills each section from the environment.
func LoadConfig(envFiles ...string) (Config, error) {
	var cfg Config
	sections := map[string]any{
		"logger":  &cfg.Logger,
		"mail":    &cfg.Mail,
		"metrics": &cfg.Metrics,
		"tracing": &cfg.Tracing,
	}
	for name, section := range sections {
		if err := env.InitConfigFrom(section, envFiles...); err != nil {
			return Config{}, errors.Wrapf(err, "failed to load %s config", name)
		}
	}
	return cfg, nil
}
