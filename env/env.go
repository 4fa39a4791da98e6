// Package env fills configuration structs from environment variables.
package env

import (
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

const DefaultEnvFile = ".env"

// InitConfig loads DefaultEnvFile when present and then processes config.
func InitConfig(config any) error {
	return InitConfigFrom(config, DefaultEnvFile)
}

// InitConfigFrom loads the given dotenv files in order, skipping missing ones,
// and processes config. Variables already present in the environment win.
func InitConfigFrom(config any, files ...string) error {
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return errors.Wrapf(err, "failed to load %s", file)
		}
	}

	if err := envconfig.Process("", config); err != nil {
		return errors.Wrap(err, "failed to envconfig.Process")
	}

	return nil
}
