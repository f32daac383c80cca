package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	staleOrderCancellationJob *StaleOrderCancellationJob
	kitchenProgressionJob     *KitchenProgressionJob
}

// NewJobManager creates a new job manager with all required jobs.
// staleAfter is how long an order may stay pending before it is cancelled.
func NewJobManager(
	cancelStaleHandler staleOrderCanceller,
	advanceKitchenHandler kitchenAdvancer,
	staleAfter time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		staleOrderCancellationJob: NewStaleOrderCancellationJob(cancelStaleHandler, staleAfter, logger),
		kitchenProgressionJob:     NewKitchenProgressionJob(advanceKitchenHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.staleOrderCancellationJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale order cancellation job: %w", err)
	}

	if err := jm.kitchenProgressionJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.staleOrderCancellationJob.Stop()
		return fmt.Errorf("failed to start kitchen progression job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs and waits for running ticks to finish.
func (jm *JobManager) StopAll() {
	jm.kitchenProgressionJob.Stop()
	jm.staleOrderCancellationJob.Stop()
}
