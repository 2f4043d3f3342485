// Package config loads BMI_* environment defaults. Flags override them.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Defaults are the environment-provided flag defaults.
type Defaults struct {
	Output          string `env:"BMI_OUTPUT"            envDefault:"text"`
	Bands           string `env:"BMI_BANDS"             envDefault:"standard"`
	Pretty          bool   `env:"BMI_PRETTY"`
	Sort            bool   `env:"BMI_SORT"`
	NoHeader        bool   `env:"BMI_NO_HEADER"`
	Quiet           bool   `env:"BMI_QUIET"`
	MetricsFile     string `env:"BMI_METRICS_FILE"`
	InvalidExitCode int    `env:"BMI_INVALID_EXIT_CODE" envDefault:"1"`
}

// ParseEnv loads Defaults from the process environment.
func ParseEnv() (Defaults, error) {
	var d Defaults
	if err := env.Parse(&d); err != nil {
		return Defaults{}, fmt.Errorf("parse env: %w", err)
	}
	return d, nil
}

// ParseEnvFrom loads Defaults from environ instead of the process
// environment.
func ParseEnvFrom(environ map[string]string) (Defaults, error) {
	var d Defaults
	if err := env.ParseWithOptions(&d, env.Options{Environment: environ}); err != nil {
		return Defaults{}, fmt.Errorf("parse env: %w", err)
	}
	return d, nil
}
