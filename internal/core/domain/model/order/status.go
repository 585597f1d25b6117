package order

import (
	"fmt"

	"dashboard/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It is a closed set: a status that is not in the table below is an error,
// never silently defaulted, because every view and every transition decision
// hangs off it.
//
// Lifecycle:
//
//	pending ──┬──> in_progress ──> finished ──┐
//	          │        │ (notifyDelay:        ├──> archived
//	          │        │  no status change)   │
//	          └──> declined ──> archived_rejected
//	                                          │
//	               cancelled ─────────────────┘
//
// Status is distinct from the payment and upload sub-states of an order,
// which evolve independently and must never be conflated with it.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status of a freshly submitted order,
	// waiting for an operator to accept or decline it.
	StatusPending

	// StatusInProgress indicates an accepted order currently being worked on.
	StatusInProgress

	// StatusFinished indicates the work on the order is done.
	StatusFinished

	// StatusDeclined indicates an operator rejected the order while pending.
	StatusDeclined

	// StatusCancelled indicates the order was cancelled (by the customer or
	// the backend); the dashboard never produces this status itself.
	StatusCancelled

	// StatusArchived is the terminal status for finished or cancelled orders
	// moved out of the active views.
	StatusArchived

	// StatusArchivedRejected is the terminal status for declined orders
	// moved out of the active views.
	StatusArchivedRejected
)

// getStatusStrings returns the wire representation of every status,
// including the invalid zero value for display purposes.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:          "unknown",
		StatusPending:          "pending",
		StatusInProgress:       "in_progress",
		StatusFinished:         "finished",
		StatusDeclined:         "declined",
		StatusCancelled:        "cancelled",
		StatusArchived:         "archived",
		StatusArchivedRejected: "archived_rejected",
	}
}

// getValidStatusStrings returns only the statuses an order may legally hold.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as invalid
	return map[Status]string{
		StatusPending:          "pending",
		StatusInProgress:       "in_progress",
		StatusFinished:         "finished",
		StatusDeclined:         "declined",
		StatusCancelled:        "cancelled",
		StatusArchived:         "archived",
		StatusArchivedRejected: "archived_rejected",
	}
}

// ParseStatus converts a wire string into a Status.
// Unknown strings are an error; the caller decides whether that aborts a
// whole page or a single order.
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a known status", s))
}

// Validate checks if the Status value is a member of the closed set.
// StatusUnknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status ("in_progress").
// It implements the fmt.Stringer interface and is safe to call on any
// Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no transition leads out of this status.
func (s Status) IsTerminal() bool {
	return s == StatusArchived || s == StatusArchivedRejected
}
