// Package config loads process configuration from the environment.
// Configuration is read once at startup and threaded explicitly into
// constructors; nothing here is consulted again after boot.
package config

import (
	"fmt"
	"os"
	"time"
)

// Storage backend selectors. Exactly one backend is active per process.
const (
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
	BackendJSONFile = "jsonfile"
)

// InsecureDevSecret signs tokens when JWT_SECRET is unset. Fine for local
// development, a hazard anywhere else — startup logs a warning rather than
// refusing to boot.
const InsecureDevSecret = "super-secret-dev-key"

// Config holds all process configuration.
type Config struct {
	HTTPAddr       string
	StorageBackend string
	DatabaseURL    string
	SQLitePath     string
	JSONFilePath   string
	JWTSecret      string
	TokenTTL       time.Duration
	Seed           bool
}

// Load reads configuration from the environment, applying defaults.
func Load() Config {
	return Config{
		HTTPAddr:       getenv("HTTP_ADDR", ":4000"),
		StorageBackend: getenv("STORAGE_BACKEND", BackendJSONFile),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		SQLitePath:     getenv("SQLITE_PATH", "data/club.sqlite3"),
		JSONFilePath:   getenv("JSONFILE_PATH", "data/club.json"),
		JWTSecret:      getenv("JWT_SECRET", InsecureDevSecret),
		TokenTTL:       getenvDuration("TOKEN_TTL", 7*24*time.Hour),
		Seed:           os.Getenv("SEED") == "1",
	}
}

// Validate checks backend-specific requirements.
func (c Config) Validate() error {
	switch c.StorageBackend {
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL required when STORAGE_BACKEND=%s", BackendPostgres)
		}
	case BackendSQLite, BackendJSONFile:
	default:
		return fmt.Errorf("invalid STORAGE_BACKEND %q: must be %s, %s or %s",
			c.StorageBackend, BackendPostgres, BackendSQLite, BackendJSONFile)
	}
	return nil
}

// UsingDefaultSecret reports whether tokens are signed with the well-known
// development secret.
func (c Config) UsingDefaultSecret() bool {
	return c.JWTSecret == InsecureDevSecret
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
	}
	return fallback
}
