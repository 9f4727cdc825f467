// Package jobs provides scheduled background tasks for the shipping system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the pricing and tracking service.
//
// # Available Jobs
//
// 1. QuoteExpirationJob - Runs every minute to flip overdue quotes to expired
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(expireQuotesHandler, logger)
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
// The expiration job uses the cron expression "0 * * * * *", firing at the
// top of every minute. Quote validity is date-based, so minute granularity is
// more than enough; the command itself is idempotent and cheap when nothing
// is overdue.
package jobs
