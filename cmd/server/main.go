// Linkmark - Personal Bookmark Manager with Smart Organization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/linkmark

// Package main is the entry point for the Linkmark server.
//
// Linkmark is a self-hosted personal bookmark manager with a smart
// organization engine: tag suggestions scored from the user's own tagging
// history, URL domain classification, tag clustering, and derived smart
// collections.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: environment variables and config file (Koanf v2)
//  2. Logging: zerolog, configured from the logging section
//  3. Database: DuckDB with the bookmarks schema
//  4. Suggestion engine: statistics-driven scoring over the store
//  5. HTTP server: chi REST API with Prometheus metrics
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins): environment variables, then a config file found at
// CONFIG_PATH or the default search paths, then built-in defaults.
//
// Common variables:
//
//	HTTP_PORT=8479
//	DUCKDB_PATH=/data/linkmark.duckdb
//	LOG_LEVEL=info
//	SUGGEST_ACTIVITY_WINDOW_DAYS=7
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM: it stops
// accepting new connections, waits for in-flight requests up to the
// configured server timeout, then checkpoints and closes the database.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/linkmark/internal/api"
	"github.com/tomtom215/linkmark/internal/config"
	"github.com/tomtom215/linkmark/internal/database"
	"github.com/tomtom215/linkmark/internal/logging"
	"github.com/tomtom215/linkmark/internal/suggest"
)

func main() {
	if err := run(); err != nil {
		logging.Fatal().Err(err).Msg("server exited with error")
	}
}

func run() error {
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("environment", cfg.Server.Environment).
		Int("port", cfg.Server.Port).
		Msg("starting linkmark")

	db, err := database.New(&cfg.Database)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("failed to close database")
		}
	}()

	engine, err := suggest.NewEngine(database.NewSuggestionStore(db), &cfg.Suggest, logging.Logger())
	if err != nil {
		return fmt.Errorf("create suggestion engine: %w", err)
	}

	handler := api.NewHandler(db, engine, cfg)
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      api.NewRouter(handler, cfg),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("http server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case sig := <-stop:
		logging.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.Timeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logging.Info().Msg("shutdown complete")
	return nil
}
