package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the full server configuration, populated from the environment.
type Config struct {
	MongoURI string `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	MongoDB  string `env:"MONGO_DB" envDefault:"ecohome"`

	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`

	HTTPPort string `env:"PORT" envDefault:"8080"`

	// Admin login is a fixed credential check, not a security boundary; the
	// defaults match the deployed game and can be overridden per install.
	AdminUsername string `env:"ADMIN_USERNAME" envDefault:"eco-home"`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"Shkola74"`

	JWTSecret string `env:"JWT_SECRET" envDefault:"super-secret-key-change-in-production"`

	CORSAllowedOrigins string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*"`
}

// Load parses the configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
