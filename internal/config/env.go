package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env carries the environment overrides honored by the CLI and TUI
// shells. The calculation core never reads the environment.
type Env struct {
	// RatesFile points at a YAML rate table to register on startup.
	RatesFile string `env:"KYUYO_RATES_FILE"`
	// TaxYear selects which registered rate table to calculate with.
	TaxYear int `env:"KYUYO_TAX_YEAR" envDefault:"2025"`
	// LogLevel is one of trace, debug, info, warn, error, off.
	LogLevel string `env:"KYUYO_LOG_LEVEL" envDefault:"info"`
}

// LoadEnv parses the process environment.
func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse environment: %w", err)
	}
	return e, nil
}
