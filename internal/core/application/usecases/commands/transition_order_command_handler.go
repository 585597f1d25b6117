package commands

import (
	"context"
	"errors"

	"dashboard/internal/core/domain/model/order"
	"dashboard/internal/core/domain/services"
	"dashboard/internal/core/ports"
	"dashboard/internal/pkg/errs"
)

// TransitionOrderCommandHandler executes a lifecycle transition end to end:
// it validates the transition against the cached status, presents the
// session credential, submits the transition to the remote order service and
// reflects the confirmed result in the view index.
//
// The handler fails fast on everything it can decide locally (unknown order,
// forbidden transition, anonymous session) so illegal requests never reach
// the network. The remote service stays the sole arbiter of the true status;
// the cache is only mutated after its acknowledgement.
type TransitionOrderCommandHandler struct {
	views    *services.ViewIndex
	sessions *services.SessionGuard
	client   ports.OrderServiceClient
	sink     ports.NotificationSink
}

// NewTransitionOrderCommandHandler creates the handler. All collaborators
// are required.
func NewTransitionOrderCommandHandler(
	views *services.ViewIndex,
	sessions *services.SessionGuard,
	client ports.OrderServiceClient,
	sink ports.NotificationSink,
) (TransitionOrderCommandHandler, error) {
	if views == nil {
		return TransitionOrderCommandHandler{}, errs.NewValueIsRequiredError("views")
	}
	if sessions == nil {
		return TransitionOrderCommandHandler{}, errs.NewValueIsRequiredError("sessions")
	}
	if client == nil {
		return TransitionOrderCommandHandler{}, errs.NewValueIsRequiredError("client")
	}
	if sink == nil {
		return TransitionOrderCommandHandler{}, errs.NewValueIsRequiredError("sink")
	}

	return TransitionOrderCommandHandler{
		views:    views,
		sessions: sessions,
		client:   client,
		sink:     sink,
	}, nil
}

// Handle processes the transition command and returns the updated order.
//
// Exactly one Started notification is emitted, followed by exactly one
// Succeeded or Failed. A credential rejection by the remote service ends the
// session before the error is returned.
func (h *TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	operation := cmd.Transition().String()
	orderID := cmd.OrderID()
	h.sink.Started(operation, orderID.String())

	status, err := h.views.StatusOf(orderID)
	if err != nil {
		h.sink.Failed(operation, orderID.String(), err)
		return nil, err
	}

	if _, err = cmd.Transition().Apply(status); err != nil {
		h.sink.Failed(operation, orderID.String(), err)
		return nil, err
	}

	cred, err := h.sessions.Require(operation)
	if err != nil {
		h.sink.Failed(operation, orderID.String(), err)
		return nil, err
	}

	receipt, err := h.client.SubmitTransition(ctx, orderID, cmd.Transition(), ports.TransitionPayload{
		Reason:  cmd.Reason(),
		Message: cmd.Message(),
	}, cred.Token())
	if err != nil {
		if errors.Is(err, errs.ErrAuthRejected) {
			h.sessions.OnRejected(ctx, operation)
		}
		h.sink.Failed(operation, orderID.String(), err)
		return nil, err
	}

	updated, err := h.views.ApplyTransition(orderID, cmd.Transition())
	if err != nil {
		h.sink.Failed(operation, orderID.String(), err)
		return nil, err
	}

	h.sink.Succeeded(operation, orderID.String(), receipt.Message)
	return updated, nil
}
