package jobs

import (
	"context"
	"fmt"
	"time"

	"redditleads/internal/dispatch/processor"
	"redditleads/internal/observability"
)

// DispatchSweeper sends the next batch of every running campaign
type DispatchSweeper interface {
	DispatchRunning(ctx context.Context) (processor.SweepResult, error)
}

// DispatchSweepJob runs the message dispatcher over all running campaigns on a schedule
type DispatchSweepJob struct {
	dispatcher DispatchSweeper
	logger     *observability.Logger
	interval   time.Duration
}

// NewDispatchSweepJob creates a new dispatch sweep job
func NewDispatchSweepJob(dispatcher DispatchSweeper, logger *observability.Logger, interval time.Duration) *DispatchSweepJob {
	if interval <= 0 {
		interval = time.Hour
	}

	return &DispatchSweepJob{
		dispatcher: dispatcher,
		logger:     logger,
		interval:   interval,
	}
}

// Name returns the job name
func (j *DispatchSweepJob) Name() string {
	return "dispatch_sweep"
}

// Schedule returns how often the job should run
func (j *DispatchSweepJob) Schedule() time.Duration {
	return j.interval
}

// Run sends one batch per running campaign
func (j *DispatchSweepJob) Run(ctx context.Context) error {
	result, err := j.dispatcher.DispatchRunning(ctx)
	if err != nil {
		return fmt.Errorf("failed to dispatch running campaigns: %w", err)
	}

	j.logger.Info(ctx, fmt.Sprintf("Dispatch sweep completed: %d campaigns, %d skipped, %d sent, %d failed",
		result.Campaigns, result.Skipped, result.Sent, result.Failed))
	return nil
}
