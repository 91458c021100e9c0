package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds process-wide settings read from the environment.
type Config struct {
	Port        string        `env:"PORT" envDefault:"3000"`
	PostgresURI string        `env:"POSTGRESQL_URI,required"`
	JWTSecret   string        `env:"JWT_SECRET,required"`
	TokenTTL    time.Duration `env:"JWT_TTL" envDefault:"0"`
}

// Load reads a .env file when present, then parses the environment. A
// missing .env is fine; deployments set variables directly.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
