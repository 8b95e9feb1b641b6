// Package config loads process-level settings from the environment. Domain
// settings (pull cost, rewards, assets folder) live in the persisted config
// document instead.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// DataDir overrides where the documents and history ledger are kept.
	DataDir string `env:"GACHA_DATA_DIR"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"GACHA_LOG_LEVEL" envDefault:"warn"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
