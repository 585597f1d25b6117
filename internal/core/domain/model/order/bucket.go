package order

import (
	"fmt"

	"dashboard/internal/pkg/errs"
)

// Bucket names a status family that has a list view on the dashboard.
// Most buckets map to a single status; the archived bucket covers both the
// archived and archived_rejected statuses. Declined orders have no bucket of
// their own: they drop out of the pending view and only surface again in
// the archived bucket after archiveRejected.
type Bucket int

const (
	// BucketUnknown represents an invalid or undefined bucket.
	BucketUnknown Bucket = iota

	// BucketPending lists orders awaiting accept/decline.
	BucketPending

	// BucketCurrent lists in-progress orders. This is the only bucket
	// readable without a credential.
	BucketCurrent

	// BucketFinished lists completed orders awaiting archival.
	BucketFinished

	// BucketCancelled lists cancelled orders awaiting archival.
	BucketCancelled

	// BucketArchived lists archived and archived-rejected orders.
	BucketArchived
)

func getBucketStrings() map[Bucket]string {
	//nolint:exhaustive // BucketUnknown is intentionally excluded as invalid
	return map[Bucket]string{
		BucketPending:   "pending",
		BucketCurrent:   "current",
		BucketFinished:  "finished",
		BucketCancelled: "cancelled",
		BucketArchived:  "archived",
	}
}

// AllBuckets returns every bucket the dashboard can list, in display order.
func AllBuckets() []Bucket {
	return []Bucket{BucketPending, BucketCurrent, BucketFinished, BucketCancelled, BucketArchived}
}

// ParseBucket converts a bucket name ("archived") into a Bucket.
func ParseBucket(s string) (Bucket, error) {
	for bucket, str := range getBucketStrings() {
		if str == s {
			return bucket, nil
		}
	}
	return BucketUnknown, errs.NewValueIsInvalidErrorWithCause("bucket",
		fmt.Errorf("%q is not a known bucket", s))
}

// BucketOf returns the bucket whose view lists orders of the given status.
// The second return value is false for declined orders, which are not
// listed anywhere until archived.
func BucketOf(status Status) (Bucket, bool) {
	switch status {
	case StatusPending:
		return BucketPending, true
	case StatusInProgress:
		return BucketCurrent, true
	case StatusFinished:
		return BucketFinished, true
	case StatusCancelled:
		return BucketCancelled, true
	case StatusArchived, StatusArchivedRejected:
		return BucketArchived, true
	default:
		return BucketUnknown, false
	}
}

// Validate checks if the Bucket is a member of the closed set.
func (b Bucket) Validate() error {
	if _, ok := getBucketStrings()[b]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("bucket",
			fmt.Errorf("%d is not a valid bucket", b))
	}
	return nil
}

// String returns the bucket name as used in routes and cache keys.
func (b Bucket) String() string {
	if str, ok := getBucketStrings()[b]; ok {
		return str
	}
	return "unknown"
}

// Statuses returns the statuses whose orders belong to this bucket.
func (b Bucket) Statuses() []Status {
	switch b {
	case BucketPending:
		return []Status{StatusPending}
	case BucketCurrent:
		return []Status{StatusInProgress}
	case BucketFinished:
		return []Status{StatusFinished}
	case BucketCancelled:
		return []Status{StatusCancelled}
	case BucketArchived:
		return []Status{StatusArchived, StatusArchivedRejected}
	default:
		return nil
	}
}

// Contains reports whether an order of the given status belongs to this
// bucket's view.
func (b Bucket) Contains(status Status) bool {
	for _, s := range b.Statuses() {
		if s == status {
			return true
		}
	}
	return false
}

// Protected reports whether listing this bucket requires a credential.
// Only the current-orders view is public.
func (b Bucket) Protected() bool {
	return b != BucketCurrent
}
