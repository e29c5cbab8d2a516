// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the Sou Arte em Cuidados web server.
// It loads configuration, connects to the portal backend and Valkey, sets
// up routing, and starts the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"souarte/internal/backend"
	"souarte/internal/cache"
	"souarte/internal/config"
	"souarte/internal/handlers"
	"souarte/internal/middleware"
	"souarte/internal/render"
	"souarte/internal/router"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"api_base_url", cfg.APIBaseURL,
	)

	// Connect to Valkey (Redis-compatible page cache).
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	// Initialize the HTML template renderer.
	// In dev mode, templates load assets from CDN; in production they use
	// compiled local files embedded in the binary.
	renderer, err := render.New(cfg.IsDev())
	if err != nil {
		slog.Error("failed to initialize template renderer", "error", err)
		os.Exit(1)
	}

	// Typed client for the portal backend REST API.
	client := backend.New(cfg.APIBaseURL)

	// Full-page HTML cache for the three brand sites. A deploy can change
	// templates and page copy, so drop anything cached by the previous
	// binary before serving.
	pageCache := cache.NewPageCache(valkeyClient, cache.DefaultPageTTL)
	pageCache.InvalidateAll(context.Background())

	// Throttle login attempts: 10 submissions per IP per minute.
	loginLimiter := middleware.NewRateLimiter(10, time.Minute)
	defer loginLimiter.Stop()

	// In non-development environments, mark cookies as Secure (HTTPS-only).
	secureCookies := !cfg.IsDev()

	// Create handler groups with their dependencies.
	publicHandlers := handlers.NewPublic(renderer, pageCache)
	authHandlers := handlers.NewAuth(client, renderer)
	adminHandlers := handlers.NewAdmin(client, renderer)
	portalHandlers := handlers.NewPortal(client, renderer)

	// Set up the Chi router with all middleware and routes.
	r := router.New(client, renderer, publicHandlers, authHandlers, adminHandlers, portalHandlers, loginLimiter, secureCookies)

	// Create the HTTP server with sensible timeouts. WriteTimeout covers
	// backend round-trips for portal pages and bulk spreadsheet uploads.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 60 * time.Second,
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

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
