package commands

import (
	"errors"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/order"
	"dashboard/internal/pkg/errs"
	"dashboard/internal/pkg/guard"
)

var ErrTransitionOrderCommandIsNotConstructed = errors.New(
	"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
)

// TransitionOrderCommand requests a lifecycle transition on a single order:
// accept, decline, markReady, notifyDelay, archive or archiveRejected.
//
// Example:
//
//	cmd, err := NewTransitionOrderCommand(orderID, order.TransitionDecline, "out of stock", "")
//	if err != nil {
//	    return err
//	}
//	updated, err := handler.Handle(ctx, cmd)
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.OrderID
	transition order.Transition
	reason     string
	message    string

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand creates a transition request.
// Reason is mandatory for decline and ignored elsewhere; message is the
// optional custom text for notifyDelay.
func NewTransitionOrderCommand(
	orderID kernel.OrderID,
	transition order.Transition,
	reason string,
	message string,
) (TransitionOrderCommand, error) {
	cmd := TransitionOrderCommand{
		reason:  reason,
		message: message,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTransition(transition),
	); err != nil {
		return TransitionOrderCommand{}, err
	}

	if transition == order.TransitionDecline && reason == "" {
		return TransitionOrderCommand{}, errs.NewValueIsRequiredError("reason")
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrTransitionOrderCommandIsNotConstructed if validation fails.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c TransitionOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// Transition returns the requested lifecycle transition.
func (c TransitionOrderCommand) Transition() order.Transition {
	return c.transition
}

// Reason returns the decline reason. Empty for other transitions.
func (c TransitionOrderCommand) Reason() string {
	return c.reason
}

// Message returns the custom delay message. Empty means the backend default.
func (c TransitionOrderCommand) Message() string {
	return c.message
}

func (c *TransitionOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *TransitionOrderCommand) setTransition(transition order.Transition) error {
	if err := transition.Validate(); err != nil {
		return err
	}

	c.transition = transition
	return nil
}
