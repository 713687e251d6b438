// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the Pagecraft server. It loads
// configuration, opens the content store, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pagecraft/internal/config"
	"pagecraft/internal/handlers"
	"pagecraft/internal/render"
	"pagecraft/internal/router"
	"pagecraft/internal/stockphoto"
	"pagecraft/internal/storage"
	"pagecraft/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables (and .env in dev).
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"data", cfg.DataPath,
	)

	// Open the content store. A missing file starts an empty site.
	st, err := store.Open(cfg.DataPath)
	if err != nil {
		slog.Error("failed to open content store", "error", err)
		os.Exit(1)
	}
	defer st.Close()

	// Connect to S3-compatible object storage (optional — the app works
	// without it, media endpoints report unconfigured).
	mediaClient, err := storage.New(
		cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
		cfg.S3Bucket, cfg.S3PublicURL,
	)
	if err != nil {
		slog.Error("failed to initialize S3 storage", "error", err)
		os.Exit(1)
	}
	if mediaClient != nil {
		slog.Info("s3 storage connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
	} else {
		slog.Warn("s3 storage not configured — media uploads disabled")
	}

	// Pexels client for the stock photo picker (also optional).
	photoClient := stockphoto.New(cfg.PexelsAPIKey)
	if photoClient == nil {
		slog.Warn("pexels not configured — stock photo search disabled")
	}

	// Public page renderer over the embedded templates.
	renderer, err := render.New(st)
	if err != nil {
		slog.Error("failed to initialize renderer", "error", err)
		os.Exit(1)
	}

	api := handlers.NewAPI(st, mediaClient, photoClient)

	// Set up the Chi router with all middleware and routes.
	r := router.New(api, renderer, cfg.AllowedOrigins)

	// WriteTimeout must accommodate media uploads and imports that wait
	// on the asset host.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
