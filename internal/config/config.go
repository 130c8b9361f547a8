// Package config loads server configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Store backends.
const (
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"
)

// Config holds every setting the server reads at startup.
type Config struct {
	Port      int    `env:"PORT" envDefault:"8080"`
	StoreKind string `env:"STORE" envDefault:"sqlite"`
	DBPath    string `env:"DB_PATH" envDefault:"./data/whist.db"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisKey      string `env:"REDIS_KEY" envDefault:"whist:state"`

	// TablePINHash is a bcrypt hash. When empty, mutations need no token.
	TablePINHash string        `env:"TABLE_PIN_HASH"`
	JWTSecret    string        `env:"JWT_SECRET"`
	TokenTTL     time.Duration `env:"TOKEN_TTL" envDefault:"24h"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

// Load reads an optional .env file, then parses the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, using environment variables")
	}
	return Parse()
}

// Parse reads the environment into a Config and validates it.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks combinations the env tags cannot express.
func (c Config) Validate() error {
	switch c.StoreKind {
	case StoreSQLite, StoreRedis:
	default:
		return fmt.Errorf("unknown STORE %q", c.StoreKind)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown LOG_FORMAT %q", c.LogFormat)
	}
	if c.AuthEnabled() && c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required when TABLE_PIN_HASH is set")
	}
	return nil
}

// AuthEnabled reports whether mutations require a scorekeeper token.
func (c Config) AuthEnabled() bool {
	return c.TablePINHash != ""
}
