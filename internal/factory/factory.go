// Package factory wires storage, services, and dependencies into a running
// application.
package factory

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/tenpinclub/rollbook/internal/config"
	"github.com/tenpinclub/rollbook/internal/dependencies/clock"
	"github.com/tenpinclub/rollbook/internal/dependencies/random"
	"github.com/tenpinclub/rollbook/internal/services/auth"
	"github.com/tenpinclub/rollbook/internal/services/roster"
	"github.com/tenpinclub/rollbook/internal/storage"
	"github.com/tenpinclub/rollbook/internal/storage/gormdb"
	"github.com/tenpinclub/rollbook/internal/storage/jsonfile"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	TokenService  *auth.TokenService
	AuthService   *auth.Service
	RosterService *roster.Service
}

// Config holds configuration for the application factory
type Config struct {
	// StorageBackend selects the storage backend
	// ("postgres", "sqlite", or "jsonfile"). If empty, defaults to "jsonfile".
	StorageBackend string
	// DatabaseURL is the Postgres DSN (required for the postgres backend)
	DatabaseURL string
	// SQLitePath is the database file path (required for the sqlite backend)
	SQLitePath string
	// JSONFilePath is the document path (required for the jsonfile backend)
	JSONFilePath string
	// JWTSecret signs session tokens
	JWTSecret string
	// TokenTTL is the session token lifetime (optional)
	// If zero, defaults to auth.DefaultTokenTTL
	TokenTTL time.Duration
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on backend
	backend := cfg.StorageBackend
	if backend == "" {
		backend = config.BackendJSONFile
	}

	var store storage.Storage
	var err error
	switch backend {
	case config.BackendPostgres:
		if cfg.DatabaseURL == "" {
			return nil, errors.New("DatabaseURL required for the postgres backend")
		}
		store, err = gormdb.NewPostgres(cfg.DatabaseURL)
	case config.BackendSQLite:
		if cfg.SQLitePath == "" {
			return nil, errors.New("SQLitePath required for the sqlite backend")
		}
		store, err = gormdb.NewSQLite(cfg.SQLitePath)
	case config.BackendJSONFile:
		if cfg.JSONFilePath == "" {
			return nil, errors.New("JSONFilePath required for the jsonfile backend")
		}
		store, err = jsonfile.New(cfg.JSONFilePath)
	default:
		return nil, fmt.Errorf("invalid StorageBackend %q: must be postgres, sqlite, or jsonfile", backend)
	}
	if err != nil {
		return nil, err
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	return newWithDependencies(store, clk, rnd, cfg.JWTSecret, cfg.TokenTTL), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, secret string, ttl time.Duration) *App {
	tokenService := auth.NewTokenService(secret, ttl, clk)
	authService := auth.New(store, tokenService, clk, rnd)
	rosterService := roster.New(store, clk)

	return &App{
		Storage:       store,
		Clock:         clk,
		Random:        rnd,
		TokenService:  tokenService,
		AuthService:   authService,
		RosterService: rosterService,
	}
}

// Close releases the application's storage
func (a *App) Close() error {
	return a.Storage.Close()
}
