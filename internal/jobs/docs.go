// Package jobs provides scheduled background tasks for the pizzeria service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic housekeeping for the order backend.
//
// # Available Jobs
//
// 1. PurgeDeliveredOrdersJob - Removes delivered orders older than the
// configured retention window
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(purgeHandler, schedule, retention, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The purge job uses a six-field cron expression taken from configuration;
// "0 0 * * * *" (hourly) is a sensible default. Retention is a duration:
// delivered orders older than it are removed on each run.
//
// # Error Handling
//
// Purge failures are logged and retried on the next scheduled run; a failed
// run never stops the scheduler.
package jobs
