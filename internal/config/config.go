// /internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/keshon/trigger-bot/pkg/cmd"
	"github.com/keshon/trigger-bot/pkg/logger"
)

type Config struct {
	Prefix     string        `env:"PREFIX" envDefault:"!"`
	Developers []string      `env:"DEVELOPERS" envSeparator:","`
	RateEvery  time.Duration `env:"RATE_EVERY" envDefault:"0s"`
	RateBurst  int           `env:"RATE_BURST" envDefault:"1"`
	Log        logger.Config `envPrefix:"LOG_"`
}

// Load reads .env files (if any) into the environment and parses it.
// A missing .env is fine; system environment variables are used as is.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load .env: %w", err)
		}
		log.Println("[INFO] No .env file found, falling back to system environment variables")
	}
	return Parse()
}

// Parse builds a Config from the current environment only.
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	cfg.Developers = cleanIDs(cfg.Developers)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.RateEvery < 0 {
		return fmt.Errorf("RATE_EVERY must not be negative, got %s", c.RateEvery)
	}
	if c.RateBurst < 1 {
		return fmt.Errorf("RATE_BURST must be at least 1, got %d", c.RateBurst)
	}
	return nil
}

// Command returns the settings the command helpers take explicitly.
func (c *Config) Command() cmd.Config {
	return cmd.Config{
		Prefix:     c.Prefix,
		Developers: append([]string(nil), c.Developers...),
		RateEvery:  c.RateEvery,
		RateBurst:  c.RateBurst,
	}
}

func cleanIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, id)
		}
	}
	return out
}
