package commands

import (
	"errors"

	"dashboard/internal/pkg/guard"
)

var ErrVerifySessionCommandIsNotConstructed = errors.New(
	"VerifySessionCommand must be created via NewVerifySessionCommand constructor",
)

// VerifySessionCommand probes the credential service to confirm the current
// token is still valid. Tokens expire server-side without notice; the probe
// turns a silent expiry into an explicit session end instead of letting the
// next transition fail.
type VerifySessionCommand struct {
	guard guard.ConstructorGuard
}

// NewVerifySessionCommand creates a parameterless probe request.
func NewVerifySessionCommand() VerifySessionCommand {
	return VerifySessionCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrVerifySessionCommandIsNotConstructed if validation fails.
func (c *VerifySessionCommand) Validate() error {
	return c.guard.Validate(ErrVerifySessionCommandIsNotConstructed)
}
