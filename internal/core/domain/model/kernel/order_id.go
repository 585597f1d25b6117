package kernel

import (
	"fmt"
	"strings"

	"dashboard/internal/pkg/errs"
)

// OrderID is a value object wrapping the opaque identifier the backend order
// service assigns to an order. The dashboard never generates these ids; it
// only carries them between list responses and transition requests, so the
// only invariant is that an id is a non-blank string.
//
// The zero value is invalid and must be constructed via NewOrderID.
//
// Example usage:
//
//	id, err := kernel.NewOrderID("68a1f0c2d94b3a0012ef77a1")
//	if err != nil {
//	    return fmt.Errorf("invalid order id: %w", err)
//	}
type OrderID struct {
	value string
}

// NewOrderID creates an OrderID from its backend string representation.
// Returns a ValueIsRequiredError when the string is empty or blank.
func NewOrderID(value string) (OrderID, error) {
	if strings.TrimSpace(value) == "" {
		return OrderID{}, errs.NewValueIsRequiredError("orderId")
	}
	return OrderID{value: value}, nil
}

// Validate checks that the OrderID was constructed with a non-empty value.
// A zero-value OrderID fails validation.
func (id OrderID) Validate() error {
	if id.value == "" {
		return errs.NewValueIsRequiredErrorWithCause("orderId",
			fmt.Errorf("order id must be created via NewOrderID"))
	}
	return nil
}

// String returns the backend representation of the id.
// It implements the fmt.Stringer interface.
func (id OrderID) String() string {
	return id.value
}

// IsEqual compares two order ids by value.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}
