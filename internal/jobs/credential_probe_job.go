package jobs

import (
	"context"
	"errors"
	"log/slog"

	"dashboard/internal/core/application/usecases/commands"
	"dashboard/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// credentialProbeSchedule runs every 5 minutes. Tokens expire server-side
// without notice; the probe surfaces an expiry before an operator hits it
// mid-transition.
const credentialProbeSchedule = "0 */5 * * * *"

// CredentialProbeJob periodically verifies the session token against the
// credential service.
type CredentialProbeJob struct {
	handler commands.VerifySessionCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCredentialProbeJob creates the periodic session probe job.
func NewCredentialProbeJob(handler commands.VerifySessionCommandHandler, logger *slog.Logger) *CredentialProbeJob {
	return &CredentialProbeJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "credential_probe_job"),
	}
}

// Start begins the periodic probe.
func (j *CredentialProbeJob) Start() error {
	_, err := j.cron.AddFunc(credentialProbeSchedule, func() {
		ctx := context.Background()
		cmd := commands.NewVerifySessionCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Rejection ends the session through the guard; anything else is
			// a probe hiccup worth logging but not acting on.
			if !errors.Is(err, errs.ErrAuthRejected) {
				j.logger.WarnContext(ctx, "Credential probe failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Credential probe job started (running every 5 minutes)")
	return nil
}

// Stop stops the periodic probe.
func (j *CredentialProbeJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Credential probe job stopped")
}
