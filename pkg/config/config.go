package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds every runtime setting, sourced from the environment with an
// optional .env file for local development.
type Config struct {
	Port              string        `mapstructure:"PORT"`
	PgsqlURL          string        `mapstructure:"PGSQL_URL"`
	IsProduction      bool          `mapstructure:"IS_PRODUCTION"`
	JWTSecret         string        `mapstructure:"JWT_SECRET"`
	JWTExpiryDuration time.Duration `mapstructure:"JWT_EXPIRY_DURATION"`
	JWTIssuer         string        `mapstructure:"JWT_ISSUER"`
	RateLimit         string        `mapstructure:"RATE_LIMIT"`
	MigrationsPath    string        `mapstructure:"MIGRATIONS_PATH"`
}

// LoadConfig reads configuration from the environment. A missing .env file is
// not an error; deployed environments set variables directly.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, relying on environment variables")
	}

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("JWT_EXPIRY_DURATION", "24h")
	v.SetDefault("JWT_ISSUER", "cashdesk")
	v.SetDefault("RATE_LIMIT", "30-M")
	v.SetDefault("MIGRATIONS_PATH", "migrations")
	v.AutomaticEnv()

	for _, key := range []string{"PORT", "PGSQL_URL", "IS_PRODUCTION", "JWT_SECRET", "JWT_EXPIRY_DURATION", "JWT_ISSUER", "RATE_LIMIT", "MIGRATIONS_PATH"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env var %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.PgsqlURL == "" {
		return nil, fmt.Errorf("PGSQL_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	return &cfg, nil
}
