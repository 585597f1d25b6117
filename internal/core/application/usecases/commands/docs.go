// Package commands contains the write-side use cases of the dashboard:
// order lifecycle transitions, session login/logout, the periodic view
// refresh and the session probe. Each command is a guarded value object and
// each handler wires the domain services to the outbound ports.
package commands
