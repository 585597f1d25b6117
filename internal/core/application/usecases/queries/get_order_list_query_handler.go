package queries

import (
	"context"
	"errors"

	"dashboard/internal/core/domain/services"
	"dashboard/internal/core/ports"
	"dashboard/internal/pkg/errs"
)

// GetOrderListQueryHandler serves one page of a bucket view. The page is
// fetched from the order service, stored in the view index and returned as
// a fresh snapshot, so subsequent transitions against it validate against
// up-to-date statuses.
//
// Protected buckets require an established session and fail locally with an
// UnauthenticatedError otherwise. A failed fetch is reported as an error
// unless the query opted into the stale fallback, in which case an older
// cached snapshot of the same page is returned marked stale.
type GetOrderListQueryHandler struct {
	views    *services.ViewIndex
	sessions *services.SessionGuard
	client   ports.OrderServiceClient
}

// NewGetOrderListQueryHandler creates the handler. All collaborators are
// required.
func NewGetOrderListQueryHandler(
	views *services.ViewIndex,
	sessions *services.SessionGuard,
	client ports.OrderServiceClient,
) (GetOrderListQueryHandler, error) {
	if views == nil {
		return GetOrderListQueryHandler{}, errs.NewValueIsRequiredError("views")
	}
	if sessions == nil {
		return GetOrderListQueryHandler{}, errs.NewValueIsRequiredError("sessions")
	}
	if client == nil {
		return GetOrderListQueryHandler{}, errs.NewValueIsRequiredError("client")
	}

	return GetOrderListQueryHandler{
		views:    views,
		sessions: sessions,
		client:   client,
	}, nil
}

// Handle fetches and returns the requested view page.
//
// A credential rejection ends the session before the error is returned; the
// stale-snapshot fallback does not apply to it, since the caller must learn
// the session is gone.
func (h *GetOrderListQueryHandler) Handle(ctx context.Context, query GetOrderListQuery) (services.View, error) {
	if err := query.Validate(); err != nil {
		return services.View{}, err
	}

	token := ""
	if query.Bucket().Protected() {
		cred, err := h.sessions.Require("list-" + query.Bucket().String())
		if err != nil {
			return services.View{}, err
		}
		token = cred.Token()
	}

	result, err := h.client.ListOrders(ctx, query.Bucket(), query.Page(), token)
	if err != nil {
		if errors.Is(err, errs.ErrAuthRejected) {
			h.sessions.OnRejected(ctx, "list-"+query.Bucket().String())
			return services.View{}, err
		}
		if query.AllowStale() {
			if cached, ok := h.views.Page(query.Bucket(), query.Page()); ok {
				cached.Stale = true
				return cached, nil
			}
		}
		return services.View{}, err
	}

	if err = h.views.StorePage(query.Bucket(), query.Page(), result.Orders, result.Total); err != nil {
		return services.View{}, err
	}

	view, ok := h.views.Page(query.Bucket(), query.Page())
	if !ok {
		return services.View{}, errs.NewObjectNotFoundError("page", query.Bucket().String())
	}
	return view, nil
}
