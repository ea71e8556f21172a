package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"marketplace/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderCycleClockJob *OrderCycleClockJob
	staleCartPurgeJob  *StaleCartPurgeJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	advanceCyclesHandler commands.AdvanceOrderCyclesCommandHandler,
	purgeCartsHandler commands.PurgeStaleCartsCommandHandler,
	cartRetention time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderCycleClockJob: NewOrderCycleClockJob(advanceCyclesHandler, logger),
		staleCartPurgeJob:  NewStaleCartPurgeJob(purgeCartsHandler, cartRetention, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderCycleClockJob.Start(); err != nil {
		return fmt.Errorf("failed to start order cycle clock job: %w", err)
	}

	if err := jm.staleCartPurgeJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.orderCycleClockJob.Stop()
		return fmt.Errorf("failed to start stale cart purge job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleCartPurgeJob.Stop()
	jm.orderCycleClockJob.Stop()
}
