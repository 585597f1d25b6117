package order

import (
	"fmt"

	"dashboard/internal/pkg/errs"
)

// Transition is a named operation that moves an order from one lifecycle
// status to another, or (notifyDelay) triggers a side effect without a
// status change. The transition table is the single authority on which
// transitions are legal from which statuses; requesting anything outside it
// fails with an InvalidTransitionError and must never reach the network.
type Transition int

const (
	// TransitionUnknown represents an invalid or undefined transition.
	TransitionUnknown Transition = iota

	// TransitionAccept moves a pending order into progress.
	TransitionAccept

	// TransitionDecline rejects a pending order; requires a reason.
	TransitionDecline

	// TransitionMarkReady completes an in-progress order.
	TransitionMarkReady

	// TransitionNotifyDelay sends a delay notice for an in-progress order.
	// The status does not change; this is a side-channel notification only.
	TransitionNotifyDelay

	// TransitionArchive moves a finished or cancelled order into the archive.
	TransitionArchive

	// TransitionArchiveRejected moves a declined order into the archive.
	TransitionArchiveRejected
)

// transitionRule describes one row of the transition table.
type transitionRule struct {
	name   string
	from   []Status
	target Status
}

// getTransitionRules returns the transition table.
// Pure data; AllowedTransitions and Apply are derived from it.
func getTransitionRules() map[Transition]transitionRule {
	return map[Transition]transitionRule{
		TransitionAccept: {
			name:   "accept",
			from:   []Status{StatusPending},
			target: StatusInProgress,
		},
		TransitionDecline: {
			name:   "decline",
			from:   []Status{StatusPending},
			target: StatusDeclined,
		},
		TransitionMarkReady: {
			name:   "markReady",
			from:   []Status{StatusInProgress},
			target: StatusFinished,
		},
		TransitionNotifyDelay: {
			name:   "notifyDelay",
			from:   []Status{StatusInProgress},
			target: StatusInProgress,
		},
		TransitionArchive: {
			name:   "archive",
			from:   []Status{StatusFinished, StatusCancelled},
			target: StatusArchived,
		},
		TransitionArchiveRejected: {
			name:   "archiveRejected",
			from:   []Status{StatusDeclined},
			target: StatusArchivedRejected,
		},
	}
}

// ParseTransition converts a transition name ("markReady") into a Transition.
func ParseTransition(s string) (Transition, error) {
	for t, rule := range getTransitionRules() {
		if rule.name == s {
			return t, nil
		}
	}
	return TransitionUnknown, errs.NewValueIsInvalidErrorWithCause("transition",
		fmt.Errorf("%q is not a known transition", s))
}

// AllowedTransitions returns every transition legal from the given status.
// The result is empty for terminal and invalid statuses.
func AllowedTransitions(from Status) []Transition {
	allowed := make([]Transition, 0, 2)
	for _, t := range []Transition{
		TransitionAccept,
		TransitionDecline,
		TransitionMarkReady,
		TransitionNotifyDelay,
		TransitionArchive,
		TransitionArchiveRejected,
	} {
		if t.allowedFrom(from) {
			allowed = append(allowed, t)
		}
	}
	return allowed
}

// Validate checks if the Transition is a member of the table.
func (t Transition) Validate() error {
	if _, ok := getTransitionRules()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("transition",
			fmt.Errorf("%d is not a valid transition", t))
	}
	return nil
}

// String returns the transition name as used in transition requests.
// It implements the fmt.Stringer interface.
func (t Transition) String() string {
	if rule, ok := getTransitionRules()[t]; ok {
		return rule.name
	}
	return "unknown"
}

// Target returns the status an order holds after this transition succeeds.
// For TransitionNotifyDelay the target equals the source status.
func (t Transition) Target() Status {
	if rule, ok := getTransitionRules()[t]; ok {
		return rule.target
	}
	return StatusUnknown
}

// ChangesStatus reports whether the transition moves the order between
// statuses. Only notifyDelay leaves the status untouched.
func (t Transition) ChangesStatus() bool {
	return t != TransitionNotifyDelay
}

// Apply validates the transition against the order's current status and
// returns the resulting status.
//
// Returns:
//   - (target, nil) when the transition is allowed from the current status
//   - (StatusUnknown, *errs.InvalidTransitionError) otherwise
func (t Transition) Apply(from Status) (Status, error) {
	if err := t.Validate(); err != nil {
		return StatusUnknown, err
	}
	if !t.allowedFrom(from) {
		return StatusUnknown, errs.NewInvalidTransitionError(t.String(), from.String())
	}
	return t.Target(), nil
}

func (t Transition) allowedFrom(from Status) bool {
	rule, ok := getTransitionRules()[t]
	if !ok {
		return false
	}
	for _, s := range rule.from {
		if s == from {
			return true
		}
	}
	return false
}
