package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix scopes every environment variable read by tracker commands.
const EnvPrefix = "COVIDTRACKER_"

// ParseEnv loads configuration from COVIDTRACKER_-prefixed environment variables.
func ParseEnv(target any) error {
	return ParseEnvFrom(target, nil)
}

// ParseEnvFrom loads configuration from environment, or from the process
// environment when environment is nil.
func ParseEnvFrom(target any, environment map[string]string) error {
	opts := env.Options{Prefix: EnvPrefix}
	if environment != nil {
		opts.Environment = environment
	}
	if err := env.ParseWithOptions(target, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
