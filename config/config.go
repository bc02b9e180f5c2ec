package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config contains service configuration parameters, sourced from the process
// environment.
type Config struct {
	Env              string `env:"ENV" envDefault:"development"`
	Port             string `env:"PORT" envDefault:"8080"`
	LogLevel         int    `env:"LOG_LEVEL" envDefault:"0"`
	TokenSecret      string `env:"TOKEN_SECRET" envDefault:"dev-secret-change-me"`
	TokenExpiryHours int    `env:"TOKEN_EXPIRY_HOURS" envDefault:"24"`
}

// Load parses configuration from environment variables. The TOKEN_SECRET
// default is a development value only; deployments must override it.
func Load() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
