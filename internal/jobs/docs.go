// Package jobs provides scheduled background tasks for the dinner service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to drive orders through the parts of their lifecycle nobody triggers by hand.
//
// # Available Jobs
//
// 1. StaleOrderCancellationJob - Runs every minute and cancels pending orders placed before the stale cutoff
// 2. KitchenProgressionJob - Runs every 10 seconds and moves confirmed orders to preparing, then to ready
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(cancelStaleHandler, advanceKitchenHandler, 30*time.Minute, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Cron expressions include a seconds field. Each run reads the wall clock once and passes it
// to the command, so a run is deterministic for a given instant.
//
// # Error Handling
//
// Errors are logged and never stop the schedule; the next tick retries. Failed job starts
// stop any already running jobs.
package jobs
