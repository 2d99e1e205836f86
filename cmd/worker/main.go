package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"redditleads/internal/bootstrap"
	"redditleads/internal/config"
	"redditleads/internal/jobs/scheduler"
	"redditleads/internal/jobs/scheduler/jobs"
	"redditleads/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := observability.NewLogger()
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting dispatch worker...")

	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		logger.Fatal(ctx, "failed to initialize dependencies", err)
	}
	defer func() {
		cleanupCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		deps.Cleanup(cleanupCtx)
	}()

	s := scheduler.New(logger)
	s.Register(jobs.NewDispatchSweepJob(&deps.Processors.Dispatch, logger, cfg.Worker.DispatchInterval))

	if err := s.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error(context.Background(), "scheduler stopped with error", err)
	}

	logger.Info(context.Background(), "Dispatch worker stopped")
}
