package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"coverplan/internal/advisor"
	"coverplan/internal/cli"
	"coverplan/internal/household"
	apphttp "coverplan/internal/http"
	applog "coverplan/internal/log"
)

func main() {
	logger := cli.SetupLogger()
	cli.LoadEnvFile()
	cfg := cli.LoadAndValidateConfig(logger)

	analyzer, closeAnalyzer := cli.NewAnalyzer(context.Background(), cfg, logger)

	store := household.New()
	runner := advisor.NewRunner(analyzer, cfg.AnalysisTimeout, logger)

	srv := apphttp.NewServer(":"+cfg.Port, store, runner, cfg.RateLimitPerMinute, logger)

	// Configure server timeouts and limits
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 2 * cfg.AnalysisTimeout
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	ctx, done := cli.GracefulShutdown(logger, 30*time.Second, func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", applog.FieldError, err)
		}
		if err := closeAnalyzer(); err != nil {
			logger.Error("Analyzer shutdown error", applog.FieldError, err)
		}
	})

	logger.Info("Starting coverplan server",
		applog.FieldOperation, applog.OpStartup,
		"port", cfg.Port,
		applog.FieldBackend, cfg.AdvisorBackend,
	)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Server error", applog.FieldError, err, "port", cfg.Port)
		os.Exit(1)
	}

	cli.WaitForShutdown(ctx, done)
	logger.Info("Server stopped gracefully", applog.FieldOperation, applog.OpShutdown)
}
