package commands

import (
	"errors"

	"dashboard/internal/pkg/guard"
)

var ErrRefreshViewsCommandIsNotConstructed = errors.New(
	"RefreshViewsCommand must be created via NewRefreshViewsCommand constructor",
)

// RefreshViewsCommand triggers a refetch of every cached bucket page, so
// stale views catch up with the backend. The periodic refresh job issues it;
// the HTTP adapter can issue it on demand as well.
type RefreshViewsCommand struct {
	guard guard.ConstructorGuard
}

// NewRefreshViewsCommand creates a parameterless refresh request.
func NewRefreshViewsCommand() RefreshViewsCommand {
	return RefreshViewsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrRefreshViewsCommandIsNotConstructed if validation fails.
func (c *RefreshViewsCommand) Validate() error {
	return c.guard.Validate(ErrRefreshViewsCommandIsNotConstructed)
}
