package services

import (
	"fmt"
	"sync"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/order"
	"dashboard/internal/pkg/errs"
)

// PageKey identifies one cached page of a bucket view. Pages requested with
// different limit or skip are cached independently.
type PageKey struct {
	Bucket order.Bucket
	Limit  int
	Skip   int
}

// View is an immutable snapshot of one cached page, safe to hand to
// presentation code. Stale views remain renderable; Stale only signals that
// a refetch would show more accurate data.
type View struct {
	Bucket   order.Bucket
	Limit    int
	Skip     int
	Orders   []*order.Order
	Total    int
	Returned int
	Stale    bool
}

type cachedPage struct {
	orders []*order.Order
	total  int
	stale  bool
}

// ViewIndex is the in-memory read model of the dashboard: every fetched
// bucket page plus an index of every order seen in any of them. It is the
// single source the UI reads from and the single place a successful
// transition is reflected, so all bucket views observe a status change
// atomically.
//
// ViewIndex follows these invariants:
//   - A page only ever holds orders whose status belongs to its bucket
//   - An order appears in at most one bucket at a time
//   - Transitions mutate the index under one lock, so no reader observes
//     an order in two buckets
//   - Indexed orders are replaced, never mutated, so views returned earlier
//     keep the statuses they were taken with
//
// All methods are safe for concurrent use.
type ViewIndex struct {
	mu     sync.RWMutex
	pages  map[PageKey]*cachedPage
	orders map[kernel.OrderID]*order.Order
}

// NewViewIndex creates an empty view index.
func NewViewIndex() *ViewIndex {
	return &ViewIndex{
		pages:  make(map[PageKey]*cachedPage),
		orders: make(map[kernel.OrderID]*order.Order),
	}
}

// StorePage replaces the cached page for (bucket, page) with freshly fetched
// orders and re-marks it fresh.
//
// Every order must belong to the bucket; a single mismatched status rejects
// the whole page with a ValueIsInvalidError and leaves the cache unchanged.
func (v *ViewIndex) StorePage(bucket order.Bucket, page kernel.Page, orders []*order.Order, total int) error {
	if err := bucket.Validate(); err != nil {
		return err
	}
	if err := page.Validate(); err != nil {
		return err
	}
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return err
		}
		if !bucket.Contains(o.Status()) {
			return errs.NewValueIsInvalidErrorWithCause("orders",
				fmt.Errorf("status %s does not belong to the %s bucket", o.Status(), bucket))
		}
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	key := PageKey{Bucket: bucket, Limit: page.Limit(), Skip: page.Skip()}
	v.pages[key] = &cachedPage{
		orders: append([]*order.Order(nil), orders...),
		total:  total,
	}
	for _, o := range orders {
		v.orders[o.ID()] = o
	}

	return nil
}

// Page returns a snapshot of the cached page for (bucket, page). The second
// return value is false when the page was never stored.
func (v *ViewIndex) Page(bucket order.Bucket, page kernel.Page) (View, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	key := PageKey{Bucket: bucket, Limit: page.Limit(), Skip: page.Skip()}
	cached, ok := v.pages[key]
	if !ok {
		return View{}, false
	}

	return View{
		Bucket:   bucket,
		Limit:    key.Limit,
		Skip:     key.Skip,
		Orders:   append([]*order.Order(nil), cached.orders...),
		Total:    cached.total,
		Returned: len(cached.orders),
		Stale:    cached.stale,
	}, true
}

// StatusOf returns the cached lifecycle status of an order. Orders never
// seen in any stored page yield an ObjectNotFoundError.
func (v *ViewIndex) StatusOf(id kernel.OrderID) (order.Status, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	o, ok := v.orders[id]
	if !ok {
		return order.StatusUnknown, errs.NewObjectNotFoundError("order", id.String())
	}
	return o.Status(), nil
}

// ApplyTransition reflects a remotely confirmed transition in the index:
// the order's status changes and the order moves from its old bucket's
// pages into its new bucket's. Callers invoke this only after the remote
// service acknowledged the transition.
//
// The moved order is prepended to the first page of the destination bucket
// and every touched page is marked stale, since its true position and the
// exact totals are only known to the backend. Orders whose new status has
// no bucket (declined) leave all views but stay indexed, so a later
// archiveRejected still finds them.
//
// Returns the updated order, an ObjectNotFoundError for ids never cached,
// or an InvalidTransitionError when the cached status forbids the
// transition. On error the index is unchanged.
func (v *ViewIndex) ApplyTransition(id kernel.OrderID, t order.Transition) (*order.Order, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	o, ok := v.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}

	// Snapshots handed out by Page share order instances with the index, so
	// an indexed order is never mutated in place. The transition is applied
	// to a copy, which then replaces the original.
	from := o.Status()
	next := o.Clone()
	if err := next.ApplyTransition(t); err != nil {
		return nil, err
	}
	v.orders[id] = next
	if !t.ChangesStatus() {
		return next, nil
	}

	if src, ok := order.BucketOf(from); ok {
		v.removeFromBucket(src, id)
	}
	if dst, ok := order.BucketOf(next.Status()); ok {
		v.insertIntoBucket(dst, next)
	}

	return next, nil
}

// removeFromBucket drops the order from every cached page of the bucket and
// adjusts the page totals. Caller holds the lock.
func (v *ViewIndex) removeFromBucket(bucket order.Bucket, id kernel.OrderID) {
	for key, cached := range v.pages {
		if key.Bucket != bucket {
			continue
		}
		if cached.total > 0 {
			cached.total--
		}
		cached.stale = true
		for i, o := range cached.orders {
			if o.ID().IsEqual(id) {
				cached.orders = append(cached.orders[:i], cached.orders[i+1:]...)
				break
			}
		}
	}
}

// insertIntoBucket prepends the order to the first page of the bucket and
// adjusts the page totals. Caller holds the lock.
func (v *ViewIndex) insertIntoBucket(bucket order.Bucket, o *order.Order) {
	for key, cached := range v.pages {
		if key.Bucket != bucket {
			continue
		}
		cached.total++
		cached.stale = true
		if key.Skip != 0 {
			continue
		}
		cached.orders = append([]*order.Order{o}, cached.orders...)
		if len(cached.orders) > key.Limit {
			cached.orders = cached.orders[:key.Limit]
		}
	}
}

// Keys returns the key of every cached page, in no particular order. The
// refresh job uses it to refetch what the dashboard has actually viewed.
func (v *ViewIndex) Keys() []PageKey {
	v.mu.RLock()
	defer v.mu.RUnlock()

	keys := make([]PageKey, 0, len(v.pages))
	for key := range v.pages {
		keys = append(keys, key)
	}
	return keys
}

// InvalidateAll marks every cached page stale. Called when the session ends,
// since protected views may no longer be fetchable.
func (v *ViewIndex) InvalidateAll() {
	v.mu.Lock()
	defer v.mu.Unlock()

	for _, cached := range v.pages {
		cached.stale = true
	}
}
