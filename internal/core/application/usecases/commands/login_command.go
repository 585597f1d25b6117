package commands

import (
	"errors"

	"dashboard/internal/pkg/errs"
	"dashboard/internal/pkg/guard"
)

var ErrLoginCommandIsNotConstructed = errors.New(
	"LoginCommand must be created via NewLoginCommand constructor",
)

// LoginCommand requests a new authenticated session from the credential
// service.
type LoginCommand struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewLoginCommand creates a login request. Email and password are required;
// their correctness is decided by the credential service, not locally.
func NewLoginCommand(email, password string) (LoginCommand, error) {
	if email == "" {
		return LoginCommand{}, errs.NewValueIsRequiredError("email")
	}
	if password == "" {
		return LoginCommand{}, errs.NewValueIsRequiredError("password")
	}

	return LoginCommand{
		email:    email,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrLoginCommandIsNotConstructed if validation fails.
func (c LoginCommand) Validate() error {
	return c.guard.Validate(ErrLoginCommandIsNotConstructed)
}

// Email returns the login email.
func (c LoginCommand) Email() string {
	return c.email
}

// Password returns the login password.
func (c LoginCommand) Password() string {
	return c.password
}
