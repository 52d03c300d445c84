package config

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"time"

	"github.com/andyle182810/devohub/devo"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

type Config struct {
	// Application
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogPretty bool   `env:"LOG_PRETTY" envDefault:"true"`

	// Devo API
	APIKey        string        `env:"DEVO_API_KEY"`
	BaseURL       string        `env:"DEVO_BASE_URL"       envDefault:"https://global-api-development.devotel.io/api/v1"`
	Timeout       time.Duration `env:"DEVO_TIMEOUT"        envDefault:"30s"`
	MaxRetries    int           `env:"DEVO_MAX_RETRIES"    envDefault:"3"`
	BackoffFactor time.Duration `env:"DEVO_BACKOFF_FACTOR" envDefault:"1s"`

	// Client-side rate limiting, disabled when zero
	RateLimit float64 `env:"DEVO_RATE_LIMIT" envDefault:"0"`
	RateBurst int     `env:"DEVO_RATE_BURST" envDefault:"1"`
}

// New reads the configuration from the process environment.
func New() (*Config, error) {
	return parse(env.ToMap(os.Environ()))
}

// Load reads dotenv files and then the process environment. Variables already set in the
// environment win over file values, and missing files are skipped.
func Load(files ...string) (*Config, error) {
	return load(env.ToMap(os.Environ()), files...)
}

func load(environ map[string]string, files ...string) (*Config, error) {
	merged := make(map[string]string)

	for _, file := range files {
		if file == "" {
			continue
		}

		values, err := godotenv.Read(file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("failed to read env file %s: %w", file, err)
		}

		for key, value := range values {
			if _, ok := merged[key]; !ok {
				merged[key] = value
			}
		}
	}

	maps.Copy(merged, environ)

	return parse(merged)
}

func parse(environ map[string]string) (*Config, error) {
	var cfg Config

	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil { //nolint:exhaustruct
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.MaxRetries < 0 {
		return nil, fmt.Errorf("failed to parse config: DEVO_MAX_RETRIES must not be negative, got %d", cfg.MaxRetries)
	}

	return &cfg, nil
}

// ClientOptions translates the configuration into devo client options.
func (c *Config) ClientOptions(logger zerolog.Logger) []devo.Option {
	opts := []devo.Option{
		devo.WithBaseURL(c.BaseURL),
		devo.WithTimeout(c.Timeout),
		devo.WithMaxRetries(c.MaxRetries),
		devo.WithBackoffFactor(c.BackoffFactor),
		devo.WithLogger(logger),
	}

	if c.RateLimit > 0 {
		opts = append(opts, devo.WithRateLimit(rate.Limit(c.RateLimit), c.RateBurst))
	}

	return opts
}
