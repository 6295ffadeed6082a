package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config controls the checkout demo driver.
type Config struct {
	LogLevel  string `env:"CHECKOUT_LOG_LEVEL"  envDefault:"info"`
	ItemsFile string `env:"CHECKOUT_ITEMS_FILE"`
}

// Load reads configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
