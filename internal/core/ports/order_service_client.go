package ports

import (
	"context"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/order"
)

// OrdersPage is one page of a bucket listing as returned by the remote
// order service, already mapped into domain orders.
type OrdersPage struct {
	Orders   []*order.Order
	Total    int
	Limit    int
	Skip     int
	Returned int
}

// TransitionPayload carries the optional body of a transition request.
// Reason is set for decline, Message for notifyDelay; both are empty for
// the other transitions.
type TransitionPayload struct {
	Reason  string
	Message string
}

// TransitionReceipt is the remote service's acknowledgement of an applied
// transition. Message is a short machine-usable string; it may be empty.
type TransitionReceipt struct {
	Message string
}

// OrderServiceClient is the outbound port to the remote order service.
//
// Implementations classify every failure into the errs taxonomy:
// AuthRejectedError for 401/403, ObjectNotFoundError for 404, TransportError
// for network failures and any other non-2xx response. The token parameter
// is empty for unauthenticated calls (the current bucket); implementations
// attach it as a bearer header when present.
type OrderServiceClient interface {
	// ListOrders fetches one page of the given bucket.
	ListOrders(ctx context.Context, bucket order.Bucket, page kernel.Page, token string) (OrdersPage, error)

	// SubmitTransition requests a lifecycle transition on the remote
	// service. The remote service is the sole arbiter of the true current
	// status; a conflicting concurrent transition surfaces as a classified
	// error, never as a fabricated success.
	SubmitTransition(ctx context.Context, id kernel.OrderID, t order.Transition, payload TransitionPayload, token string) (TransitionReceipt, error)
}
