// Command api is the tonyWoW dashboard API server.
//
// Usage:
//
//	tonywow-api
//	API_PORT=8080 tonywow-api

// @title tonyWoW API
// @version 1.0.0
// @description Backend for a personal World of Warcraft dashboard. Resolves character identities against Raider.io, caches profiles, and serves derived presentation values.
// @host localhost:8000
// @BasePath /api/v1
// @schemes http https
// @license.name MIT
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/Tony1885/tonyWoW/internal/api"
	"github.com/Tony1885/tonyWoW/internal/cache"
	"github.com/Tony1885/tonyWoW/internal/config"
	"github.com/Tony1885/tonyWoW/internal/derive"
	"github.com/Tony1885/tonyWoW/internal/raiderio"
	"github.com/Tony1885/tonyWoW/internal/wow"

	_ "github.com/Tony1885/tonyWoW/docs" // swagger docs
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Load .env if present
	_ = godotenv.Load(".env")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	// Initialize cache
	appCache := cache.New(cfg.CacheEnabled)
	logger.Info("Cache initialized",
		"enabled", cfg.CacheEnabled,
		"ttl", cfg.CacheTTL,
		"negative_ttl", cfg.NegativeCacheTTL)

	// Provider client and lookup service
	client := raiderio.NewClient(cfg.RaiderIOBaseURL, cfg.ProviderPerMinute, cfg.ProviderTimeout, logger)
	service := wow.NewService(client, appCache, cfg.CacheTTL, cfg.NegativeCacheTTL, logger)

	// Presentation deriver with the static tables
	deriver := derive.New(derive.DefaultConfig())

	// Create router
	router := api.NewRouter(service, deriver, appCache, cfg)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	go func() {
		logger.Info("Starting tonyWoW API",
			"addr", addr,
			"environment", cfg.Environment,
			"provider", cfg.RaiderIOBaseURL,
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt
	<-ctx.Done()
	logger.Info("Shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
