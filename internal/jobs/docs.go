// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance the order service requires.
//
// # Available Jobs
//
// 1. OrderCycleClockJob - Runs every minute to open order cycles whose window has started and close ones whose window has ended
// 2. StaleCartPurgeJob - Runs daily at 03:00 to delete abandoned cart-state orders older than the retention period
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(advanceCyclesHandler, purgeCartsHandler, retention, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Job runs log failures and carry on; the next tick retries
// - Failed job starts will stop any already running jobs
package jobs
