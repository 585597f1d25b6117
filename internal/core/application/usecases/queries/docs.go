// Package queries contains the read-side use cases of the dashboard. The
// single query fetches one page of a bucket view and keeps the view index in
// sync with what the backend returned.
package queries
