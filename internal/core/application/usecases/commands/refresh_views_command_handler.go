package commands

import (
	"context"
	"errors"
	"log/slog"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/services"
	"dashboard/internal/core/ports"
	"dashboard/internal/pkg/errs"
)

// RefreshViewsCommandHandler refetches every cached page from the order
// service. Protected buckets are skipped while the session is anonymous;
// their cached views stay stale until the next login. One failing page does
// not stop the others, except for a credential rejection, which ends the
// session and aborts the refresh.
type RefreshViewsCommandHandler struct {
	views    *services.ViewIndex
	sessions *services.SessionGuard
	client   ports.OrderServiceClient
	logger   *slog.Logger
}

// NewRefreshViewsCommandHandler creates the handler. All collaborators are
// required.
func NewRefreshViewsCommandHandler(
	views *services.ViewIndex,
	sessions *services.SessionGuard,
	client ports.OrderServiceClient,
	logger *slog.Logger,
) (RefreshViewsCommandHandler, error) {
	if views == nil {
		return RefreshViewsCommandHandler{}, errs.NewValueIsRequiredError("views")
	}
	if sessions == nil {
		return RefreshViewsCommandHandler{}, errs.NewValueIsRequiredError("sessions")
	}
	if client == nil {
		return RefreshViewsCommandHandler{}, errs.NewValueIsRequiredError("client")
	}
	if logger == nil {
		return RefreshViewsCommandHandler{}, errs.NewValueIsRequiredError("logger")
	}

	return RefreshViewsCommandHandler{
		views:    views,
		sessions: sessions,
		client:   client,
		logger:   logger,
	}, nil
}

// Handle refetches all cached pages and stores the fresh results.
func (h *RefreshViewsCommandHandler) Handle(ctx context.Context, cmd RefreshViewsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	token := ""
	if cred, active := h.sessions.Current(); active {
		token = cred.Token()
	}

	for _, key := range h.views.Keys() {
		if key.Bucket.Protected() && token == "" {
			continue
		}

		page, err := kernel.NewPage(key.Limit, key.Skip)
		if err != nil {
			return err
		}

		result, err := h.client.ListOrders(ctx, key.Bucket, page, token)
		if err != nil {
			if errors.Is(err, errs.ErrAuthRejected) {
				h.sessions.OnRejected(ctx, "refresh-"+key.Bucket.String())
				return err
			}
			h.logger.Warn("view refresh failed for page",
				"bucket", key.Bucket.String(), "limit", key.Limit, "skip", key.Skip, "error", err)
			continue
		}

		if err = h.views.StorePage(key.Bucket, page, result.Orders, result.Total); err != nil {
			h.logger.Warn("refetched page rejected by view index",
				"bucket", key.Bucket.String(), "error", err)
		}
	}

	return nil
}
