package jobs

import (
	"fmt"
	"log/slog"

	"dashboard/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	viewRefreshJob     *ViewRefreshJob
	credentialProbeJob *CredentialProbeJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	refreshHandler commands.RefreshViewsCommandHandler,
	verifyHandler commands.VerifySessionCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		viewRefreshJob:     NewViewRefreshJob(refreshHandler, logger),
		credentialProbeJob: NewCredentialProbeJob(verifyHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.viewRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start view refresh job: %w", err)
	}

	if err := jm.credentialProbeJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.viewRefreshJob.Stop()
		return fmt.Errorf("failed to start credential probe job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.credentialProbeJob.Stop()
	jm.viewRefreshJob.Stop()
}
