package kernel

import "dashboard/internal/pkg/errs"

const (
	// DefaultPageLimit is the page size the dashboard requests when the
	// caller does not specify one.
	DefaultPageLimit = 50

	// MaxPageLimit bounds a single list request; the backend rejects larger
	// pages anyway and the cache should never hold one.
	MaxPageLimit = 200
)

// Page is a value object describing one slice of a paginated list: how many
// orders to return (limit) and how many to skip from the start (skip).
// Together with a view bucket it forms the cache key of the View Index.
//
// The zero value is invalid (limit 0); construct via NewPage or DefaultPage.
type Page struct {
	limit int
	skip  int
}

// NewPage creates a page descriptor.
// Limit must be within [1, MaxPageLimit]; skip must not be negative.
func NewPage(limit, skip int) (Page, error) {
	if limit < 1 || limit > MaxPageLimit {
		return Page{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxPageLimit)
	}
	if skip < 0 {
		return Page{}, errs.NewValueIsInvalidError("skip")
	}
	return Page{limit: limit, skip: skip}, nil
}

// DefaultPage returns the first page with the default limit.
func DefaultPage() Page {
	return Page{limit: DefaultPageLimit, skip: 0}
}

// Validate checks that the Page was properly constructed.
func (p Page) Validate() error {
	if p.limit == 0 {
		return errs.NewValueIsRequiredError("page must be created via NewPage or DefaultPage")
	}
	return nil
}

// Limit returns the requested page size.
func (p Page) Limit() int {
	return p.limit
}

// Skip returns the number of orders skipped from the start of the list.
func (p Page) Skip() int {
	return p.skip
}

// IsFirst reports whether this is the first (most recent) page of a list.
func (p Page) IsFirst() bool {
	return p.skip == 0
}
