// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// MinJWTSecretLen is the shortest JWT_SECRET Load accepts.
const MinJWTSecretLen = 16

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// JWTSecret signs and verifies access tokens. Required, at least
	// MinJWTSecretLen bytes.
	JWTSecret string

	// AccessTokenTTL is how long an issued token stays valid. Defaults to 30m.
	AccessTokenTTL time.Duration

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["*"], which allows any origin.
	CORSOrigins []string

	// MaxBodyBytes caps request bodies. Defaults to 1 MiB.
	MaxBodyBytes int64

	// AutoMigrate applies pending migrations at startup.
	AutoMigrate bool

	// CatalogWriteKey, when non-empty, is required in X-Catalog-Key on
	// catalog writes.
	CatalogWriteKey string

	// LoginRatePerMinute is the per-IP request budget for /api/auth/*.
	LoginRatePerMinute int
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set, or the
// first variable that fails to parse.
func Load() (Config, error) {
	cfg := Config{
		Port:            getEnv("PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		CORSOrigins:     splitCSV(getEnv("CORS_ORIGINS", "*")),
		CatalogWriteKey: os.Getenv("CATALOG_WRITE_KEY"),
	}

	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}
	if len(cfg.JWTSecret) < MinJWTSecretLen {
		return Config{}, fmt.Errorf("JWT_SECRET must be at least %d characters", MinJWTSecretLen)
	}

	var err error
	if cfg.AccessTokenTTL, err = parseEnv("ACCESS_TOKEN_TTL", 30*time.Minute, time.ParseDuration); err != nil {
		return Config{}, err
	}
	if cfg.MaxBodyBytes, err = parseEnv("MAX_BODY_BYTES", int64(1<<20), func(s string) (int64, error) {
		return strconv.ParseInt(s, 10, 64)
	}); err != nil {
		return Config{}, err
	}
	if cfg.AutoMigrate, err = parseEnv("AUTO_MIGRATE", false, strconv.ParseBool); err != nil {
		return Config{}, err
	}
	if cfg.LoginRatePerMinute, err = parseEnv("LOGIN_RATE_PER_MINUTE", 10, strconv.Atoi); err != nil {
		return Config{}, err
	}

	if cfg.AccessTokenTTL <= 0 || cfg.MaxBodyBytes <= 0 || cfg.LoginRatePerMinute <= 0 {
		return Config{}, fmt.Errorf("ACCESS_TOKEN_TTL, MAX_BODY_BYTES and LOGIN_RATE_PER_MINUTE must be positive")
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// parseEnv parses the variable named by key, returning fallback when unset.
func parseEnv[T any](key string, fallback T, parse func(string) (T, error)) (T, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	out, err := parse(v)
	if err != nil {
		return fallback, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return out, nil
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
