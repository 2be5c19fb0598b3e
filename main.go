// Package main is the entry point for the expense tracker server.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mnsharma/expense-tracker/internal/config"
	"github.com/mnsharma/expense-tracker/internal/database"
	"github.com/mnsharma/expense-tracker/internal/logger"
	"github.com/mnsharma/expense-tracker/internal/repository"
	"github.com/mnsharma/expense-tracker/internal/server"
	"github.com/mnsharma/expense-tracker/internal/telemetry"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("expense-tracker %s (commit: %s, built: %s)\n", version, commit, date)
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to load config")
	}

	logger.SetLevel(cfg.LogLevel)

	shutdownTracing, err := telemetry.Setup(ctx, cfg.OTLPEndpoint, cfg.LogLevel)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to set up tracing")
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Log.Warn().Err(err).Msg("Tracing shutdown failed")
		}
	}()

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer pool.Close()

	if err := database.RunMigrations(ctx, pool); err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	logger.Log.Info().Msg("Database initialized successfully")

	store := repository.NewExpenseRepository(pool)
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           server.New(store, cfg.AssetsDir).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		logger.Log.Info().Msg("Shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Log.Error().Err(err).Msg("HTTP shutdown failed")
		}
		cancel()
	}()

	logger.Log.Info().Str("addr", cfg.HTTPAddr).Msg("Starting HTTP server")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Log.Fatal().Err(err).Msg("HTTP server failed")
	}
}
