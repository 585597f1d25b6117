package jobs

import (
	"context"
	"errors"
	"log/slog"

	"dashboard/internal/core/application/usecases/commands"
	"dashboard/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// viewRefreshSchedule runs every 30 seconds; frequent enough to keep the
// dashboard's buckets close to the backend without hammering it.
const viewRefreshSchedule = "*/30 * * * * *"

// ViewRefreshJob periodically refetches every cached bucket page, so views
// left open on the dashboard converge with the backend between user actions.
type ViewRefreshJob struct {
	handler commands.RefreshViewsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewViewRefreshJob creates the periodic view refresh job.
func NewViewRefreshJob(handler commands.RefreshViewsCommandHandler, logger *slog.Logger) *ViewRefreshJob {
	return &ViewRefreshJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "view_refresh_job"),
	}
}

// Start begins the periodic refresh.
func (j *ViewRefreshJob) Start() error {
	_, err := j.cron.AddFunc(viewRefreshSchedule, func() {
		ctx := context.Background()
		cmd := commands.NewRefreshViewsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// A rejected credential already ended the session; the handler
			// logged the details.
			if !errors.Is(err, errs.ErrAuthRejected) {
				j.logger.ErrorContext(ctx, "View refresh job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "View refresh job started (running every 30 seconds)")
	return nil
}

// Stop stops the periodic refresh.
func (j *ViewRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "View refresh job stopped")
}
