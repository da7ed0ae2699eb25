package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// DefaultJWTSecret is the fallback signing key used when JWT_SECRET is
// unset. It is a known weak placeholder so a dev machine can boot without
// a .env; any real deployment must override it.
const DefaultJWTSecret = "dev-secret-change-me"

type Config struct {
	AppPort string `env:"APP_PORT" envDefault:"8080"`
	AppEnv  string `env:"APP_ENV" envDefault:"dev"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBName     string `env:"DB_NAME" envDefault:"schoolms"`
	DBSSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	JWTSecret string        `env:"JWT_SECRET" envDefault:"dev-secret-change-me"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"12h"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}
	return cfg, nil
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode,
	)
}
