package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/funfun03/form-showcase/internal/bootstrap"
	"github.com/funfun03/form-showcase/internal/config"
	"github.com/funfun03/form-showcase/internal/router"
	"github.com/funfun03/form-showcase/internal/shared/logger"
	"github.com/funfun03/form-showcase/internal/shared/middleware"
	"github.com/funfun03/form-showcase/internal/shared/validator"
	"github.com/funfun03/form-showcase/internal/userreg"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	// Parse command line flags
	env := parseFlags()

	// Initialize logger
	logger.Setup(env)
	slog.Info("Initializing server", "env", env)

	// Run application
	if err := run(env); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped", "env", env)
}

// parseFlags parses command line arguments
func parseFlags() string {
	env := flag.String("env", "local", "Environment (local|dev|prod)")
	flag.Parse()
	return *env
}

// run contains the main application logic
func run(env string) error {
	// Create root context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load configuration
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	slog.Info("Configuration loaded")

	// Register validators before any route can bind a request
	if err := validator.RegisterAll(); err != nil {
		return fmt.Errorf("register common validators: %w", err)
	}
	if err := userreg.RegisterValidators(); err != nil {
		return fmt.Errorf("register user registration validators: %w", err)
	}

	srv, limiter := setupServer(cfg)
	defer limiter.Stop()

	// Start server with graceful shutdown
	return startWithGracefulShutdown(ctx, srv, cfg.Server.GracefulTimeout)
}

// setupServer initializes and configures the HTTP server
func setupServer(cfg *config.Config) (*bootstrap.Server, *middleware.RateLimiter) {
	boot := bootstrap.NewBootstrap(cfg)
	ginEngine := boot.SetupEngine()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// Setup application-specific routes
	limiter := router.Setup(ginEngine, cfg, registry)

	slog.Info("Server configured",
		"env", cfg.App.Env,
	)

	return bootstrap.New(cfg, ginEngine), limiter
}

// startWithGracefulShutdown starts the server and handles graceful shutdown
func startWithGracefulShutdown(ctx context.Context, srv *bootstrap.Server, gracefulTimeout time.Duration) error {
	// Channel to receive server errors
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		serverErrors <- srv.Start()
	}()

	// Channel to receive OS signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Wait for either server error or interrupt signal
	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil

	case sig := <-quit:
		slog.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, cancel := context.WithTimeout(ctx, gracefulTimeout)
		defer cancel()

		slog.Info("Shutting down server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("forced shutdown: %w", err)
		}
		return nil
	}
}
