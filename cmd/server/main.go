package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/tenpinclub/rollbook/internal/api"
	"github.com/tenpinclub/rollbook/internal/config"
	"github.com/tenpinclub/rollbook/internal/factory"
	"github.com/tenpinclub/rollbook/internal/seed"
)

func main() {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load .env if present, then configuration from the environment
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if cfg.UsingDefaultSecret() {
		logger.Warn("JWT_SECRET not set, using the insecure development secret")
	}

	// Create application factory
	app, err := factory.New(factory.Config{
		StorageBackend: cfg.StorageBackend,
		DatabaseURL:    cfg.DatabaseURL,
		SQLitePath:     cfg.SQLitePath,
		JSONFilePath:   cfg.JSONFilePath,
		JWTSecret:      cfg.JWTSecret,
		TokenTTL:       cfg.TokenTTL,
		Logger:         logger,
	})
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("storage close error", slog.String("error", err.Error()))
		}
	}()

	// Seed demo data on request
	if cfg.Seed {
		if err := seed.Run(context.Background(), app.Storage, app.Clock, app.Random, logger); err != nil {
			logger.Error("seeding failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		AuthService:    app.AuthService,
		RosterService:  app.RosterService,
		StorageBackend: cfg.StorageBackend,
	})

	// Create server
	serverConfig := api.DefaultServerConfig()
	serverConfig.Addr = cfg.HTTPAddr
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started",
		slog.String("addr", cfg.HTTPAddr),
		slog.String("storage_backend", cfg.StorageBackend),
	)

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}
