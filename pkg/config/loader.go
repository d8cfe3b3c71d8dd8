package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/validext/pkg/logger"
)

// EnvPrefix is prepended to every variable name read by Load.
const EnvPrefix = "VALIDEXT_"

// Config holds the settings of the validext command. Flags given on the
// command line take precedence over these values.
type Config struct {
	Rules       string `env:"RULES"`
	Lang        string `env:"LANG" envDefault:"en"`
	Catalog     string `env:"CATALOG"`
	AllowLike   bool   `env:"ALLOW_LIKE"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text"`
	Concurrency int    `env:"CONCURRENCY" envDefault:"4"`
}

// LoadEnv loads .env files into the process environment without overriding
// variables that are already set. Without arguments it loads ./.env and
// ignores its absence.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return errors.Join(ErrLoadingEnvFile, err)
		}
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Load reads .env files (see LoadEnv) and parses VALIDEXT_* variables.
func Load(files ...string) (Config, error) {
	if err := LoadEnv(files...); err != nil {
		return Config{}, err
	}

	cfg, err := env.ParseAsWithOptions[Config](env.Options{Prefix: EnvPrefix})
	if err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges that env tags cannot express.
func (c Config) Validate() error {
	if c.Concurrency < 0 {
		return fmt.Errorf("%w: concurrency must not be negative, got %d", ErrInvalidConfig, c.Concurrency)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	if _, err := logger.ParseFormat(c.LogFormat); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	return nil
}
