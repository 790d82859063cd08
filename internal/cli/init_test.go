package cli

import (
	"context"
	"syscall"
	"testing"
	"time"

	"coverplan/internal/advisor/canned"
	"coverplan/internal/config"
	applog "coverplan/internal/log"
)

func TestNewAnalyzerDefaultsToCanned(t *testing.T) {
	cfg := &config.Config{AdvisorBackend: config.BackendCanned}
	logger := applog.New(applog.DefaultConfig())

	analyzer, closeFn := NewAnalyzer(context.Background(), cfg, logger)
	if _, ok := analyzer.(*canned.Advisor); !ok {
		t.Fatalf("got %T, want the canned backend", analyzer)
	}
	if err := closeFn(); err != nil {
		t.Fatalf("canned closer must be a no-op: %v", err)
	}
}

func TestGracefulShutdownRunsCleanupOnSignal(t *testing.T) {
	logger := applog.New(applog.DefaultConfig())
	cleaned := make(chan struct{})

	ctx, done := GracefulShutdown(logger, 5*time.Second, func() { close(cleaned) })

	if err := syscall.Kill(syscall.Getpid(), syscall.SIGTERM); err != nil {
		t.Fatalf("send signal: %v", err)
	}

	select {
	case <-cleaned:
	case <-time.After(5 * time.Second):
		t.Fatal("cleanup never ran after SIGTERM")
	}

	WaitForShutdown(ctx, done)
	select {
	case <-ctx.Done():
	default:
		t.Fatal("context not cancelled after shutdown")
	}
}
