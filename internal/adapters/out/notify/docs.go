// Package notify provides log-backed implementations of the notification
// ports: operation outcomes and session endings become structured log
// records.
package notify
