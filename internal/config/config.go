package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"banner-rotator/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// Nested structs are parsed with their envPrefix; see the configs package for
// defaults.
type Config struct {
	// Env names the deployment environment (e.g. prod, dev). It is attached
	// to every log line.
	Env string `env:"ENV" envDefault:"prod"`

	HTTP   configs.HTTP     `envPrefix:"HTTP_"`
	Log    configs.Logger   `envPrefix:"LOG_"`
	Psql   configs.Postgres `envPrefix:"PSQL_"`
	Auth   configs.Auth     `envPrefix:"AUTH_"`
	Banner configs.Banner   `envPrefix:"BANNER_"`
}

// Load reads configuration from environment variables into a Config. All
// fields fall back to their defaults when the variable is not set.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if err := checkSecret("AUTH_JWT_SECRET", cfg.Auth.JWTSecret); err != nil {
		return cfg, err
	}
	if err := checkSecret("AUTH_NONCE_KEY", cfg.Auth.NonceKey); err != nil {
		return cfg, err
	}
	if cfg.Auth.JWTSecret == cfg.Auth.NonceKey {
		return cfg, fmt.Errorf("AUTH_JWT_SECRET and AUTH_NONCE_KEY must differ")
	}
	return cfg, nil
}

func checkSecret(name, value string) error {
	if len(value) < configs.MinSecretLen {
		return fmt.Errorf("%s must be at least %d bytes", name, configs.MinSecretLen)
	}
	if strings.Contains(strings.ToLower(value), "change-me") {
		return fmt.Errorf("%s still holds a placeholder value", name)
	}
	return nil
}
