// Package jobs provides scheduled background tasks for the dashboard.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to keep the dashboard's state converging with the backend.
//
// # Available Jobs
//
// 1. ViewRefreshJob - Runs every 30 seconds to refetch every cached bucket page
// 2. CredentialProbeJob - Runs every 5 minutes to verify the session token is still accepted
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(refreshHandler, verifyHandler, logger)
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
// - Both jobs treat a rejected credential as an expected outcome: the session
//   guard already ended the session and notified the listener
// - Other failures are logged and retried on the next tick
// - Failed job starts will stop any already running jobs
package jobs
