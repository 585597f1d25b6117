package queries

import (
	"errors"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/order"
	"dashboard/internal/pkg/guard"
)

var ErrGetOrderListQueryIsNotConstructed = errors.New(
	"GetOrderListQuery must be created via NewGetOrderListQuery constructor",
)

// GetOrderListQuery requests one page of a bucket view: the orders, the
// backend totals and the staleness of the local cache.
type GetOrderListQuery struct { //nolint:recvcheck //using for validation
	bucket     order.Bucket
	page       kernel.Page
	allowStale bool

	guard guard.ConstructorGuard
}

// NewGetOrderListQuery creates a list request for the given bucket and page.
// A failed fetch is reported as an error.
func NewGetOrderListQuery(bucket order.Bucket, page kernel.Page) (GetOrderListQuery, error) {
	query := GetOrderListQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setBucket(bucket),
		query.setPage(page),
	); err != nil {
		return GetOrderListQuery{}, err
	}

	return query, nil
}

// NewGetOrderListQueryWithStaleFallback creates a list request that may be
// answered from an older cached snapshot, marked stale, when the backend
// fetch fails. A credential rejection is still reported as an error.
func NewGetOrderListQueryWithStaleFallback(bucket order.Bucket, page kernel.Page) (GetOrderListQuery, error) {
	query, err := NewGetOrderListQuery(bucket, page)
	if err != nil {
		return GetOrderListQuery{}, err
	}

	query.allowStale = true
	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderListQueryIsNotConstructed if validation fails.
func (q GetOrderListQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderListQueryIsNotConstructed)
}

// Bucket returns the requested view bucket.
func (q GetOrderListQuery) Bucket() order.Bucket {
	return q.bucket
}

// Page returns the requested pagination.
func (q GetOrderListQuery) Page() kernel.Page {
	return q.page
}

// AllowStale reports whether a cached snapshot may stand in for a failed
// fetch.
func (q GetOrderListQuery) AllowStale() bool {
	return q.allowStale
}

func (q *GetOrderListQuery) setBucket(bucket order.Bucket) error {
	if err := bucket.Validate(); err != nil {
		return err
	}

	q.bucket = bucket
	return nil
}

func (q *GetOrderListQuery) setPage(page kernel.Page) error {
	if err := page.Validate(); err != nil {
		return err
	}

	q.page = page
	return nil
}
