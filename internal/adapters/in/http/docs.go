// Package http is the inbound HTTP adapter of the dashboard: session
// routes, bucket list routes and transition routes, all mapped onto the
// application layer's commands and queries.
package http
