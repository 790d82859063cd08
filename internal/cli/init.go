// Package cli provides common initialization utilities for cmd/coverplan.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"coverplan/internal/advisor"
	"coverplan/internal/advisor/canned"
	"coverplan/internal/advisor/gemini"
	"coverplan/internal/config"
	applog "coverplan/internal/log"
)

// SetupLogger initializes structured logging with default settings.
// Returns the configured logger and sets it as the default logger.
func SetupLogger() *applog.Logger {
	logger := applog.New(applog.DefaultConfig())
	applog.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *applog.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", applog.FieldError, err)
		os.Exit(1)
	}
	return cfg
}

// NewAnalyzer builds the analysis backend selected by configuration. The
// returned closer is a no-op for backends without a connection to release.
func NewAnalyzer(ctx context.Context, cfg *config.Config, logger *applog.Logger) (advisor.Analyzer, func() error) {
	switch cfg.AdvisorBackend {
	case config.BackendGemini:
		client, err := gemini.New(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, logger)
		if err != nil {
			logger.Error("Failed to initialize Gemini backend",
				applog.FieldError, err,
				applog.FieldModel, cfg.GeminiModel,
			)
			os.Exit(1)
		}
		logger.Info("Using Gemini analysis backend",
			applog.FieldBackend, config.BackendGemini,
			applog.FieldModel, cfg.GeminiModel,
		)
		return client, client.Close
	default:
		logger.Info("Using canned analysis backend", applog.FieldBackend, config.BackendCanned)
		return canned.New(), func() error { return nil }
	}
}

// GracefulShutdown sets up signal handling for graceful shutdown.
// Returns a context that will be cancelled on shutdown signals,
// and a channel that signals when shutdown is complete.
func GracefulShutdown(logger *applog.Logger, timeout time.Duration, cleanup func()) (context.Context, <-chan struct{}) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), timeout)
		defer shutdownCancel()

		if cleanup != nil {
			cleanup()
		}

		cancel()

		select {
		case <-shutdownCtx.Done():
			logger.Warn("Shutdown timeout reached")
		case <-time.After(2 * time.Second):
			logger.Info("Shutdown complete")
		}
		close(done)
	}()

	return ctx, done
}

// WaitForShutdown blocks until the context is cancelled.
func WaitForShutdown(ctx context.Context, done <-chan struct{}) {
	<-ctx.Done()
	<-done
}
