// Package jobs provides scheduled background tasks for the settlement engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations the service needs.
//
// # Available Jobs
//
// 1. DisputeSweepJob - Runs every minute to auto-accept weight disputes that
// passed their response window without a merchant decision.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(sweepHandler, logger)
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
// The sweep runs on the cron expression "0 * * * * *", once a minute. The
// response window is measured in days, so minute granularity keeps the
// enforcement near the deadline without hammering the database.
//
// # Error Handling
//
// - Sweep errors are logged and retried on the next tick; a dispute whose
// wallet cannot cover the excess is left pending and picked up again later.
package jobs
