package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

// Config holds all environment-driven settings. The three secrets have no
// defaults: startup fails when they are missing.
type Config struct {
	Addr      string `env:"ADDR" envDefault:":8080"`
	DBPath    string `env:"DB_PATH" envDefault:"issues.db"`
	UploadDir string `env:"UPLOAD_DIR" envDefault:"uploads"`

	SessionSecret string `env:"SESSION_SECRET" validate:"required"`
	AdminUser     string `env:"ADMIN_USER" validate:"required"`
	AdminPass     string `env:"ADMIN_PASS" validate:"required"`
}

// Load parses and validates configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}
