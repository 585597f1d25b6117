// Package order provides the domain model for order lifecycle management on
// the dashboard: the Order aggregate, the closed Status set, the Transition
// table that is the single authority on legal lifecycle moves, the
// independent payment/upload sub-states, and the Bucket families backing the
// dashboard's list views.
//
// Key business rules:
//   - An order's status is always one of the defined values; unknown wire
//     statuses are errors, never defaults
//   - Status changes only through ApplyTransition, enforcing the table:
//     accept/decline from pending, markReady/notifyDelay from in_progress,
//     archive from finished or cancelled, archiveRejected from declined
//   - notifyDelay is a side-channel notice and leaves the status untouched
//   - Payment and upload sub-states evolve independently of the lifecycle
//   - The archived bucket is a status family covering both archived and
//     archived_rejected; declined orders are listed nowhere until archived
//
// The package follows Domain-Driven Design conventions: validating
// constructors, private fields with getters, and invalid zero values.
package order
