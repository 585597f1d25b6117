// Package services contains the stateful domain services of the dashboard:
// the ViewIndex read model that keeps every bucket view consistent with the
// last confirmed transition, and the SessionGuard that owns the single
// authentication credential.
package services
