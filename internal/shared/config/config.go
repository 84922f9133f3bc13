package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds application configuration, loaded once at startup and passed
// by reference into the layers that need it.
type Config struct {
	Port             string   `env:"PORT" envDefault:"5001"`
	Env              string   `env:"ENV" envDefault:"dev"`
	DatabaseURL      string   `env:"DATABASE_URL"`
	JWTSecret        string   `env:"JWT_SECRET"`
	CORSAllowOrigins []string `env:"CORS_ALLOW_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
	MaxBodyBytes     int64    `env:"MAX_BODY_BYTES" envDefault:"52428800"` // 50MB
}

// Load reads configuration from environment variables and validates the
// parts the process cannot run without.
func Load() (Config, error) {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	cfg.Env = normalizeEnv(cfg.Env)
	cfg.JWTSecret = strings.TrimSpace(cfg.JWTSecret)
	cfg.DatabaseURL = strings.TrimSpace(cfg.DatabaseURL)
	cfg.CORSAllowOrigins = trimAll(cfg.CORSAllowOrigins)

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.DatabaseURL == "" && !IsDevLike(cfg.Env) {
		return Config{}, fmt.Errorf("DATABASE_URL is required in %s", cfg.Env)
	}
	if cfg.MaxBodyBytes <= 0 {
		return Config{}, fmt.Errorf("MAX_BODY_BYTES must be positive")
	}

	return cfg, nil
}

// IsDevLike reports whether the environment tolerates missing external
// services (in-memory repositories instead of Postgres).
func IsDevLike(envName string) bool {
	return envName == "dev" || envName == "local"
}

func trimAll(raw []string) []string {
	var out []string
	for _, s := range raw {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}
