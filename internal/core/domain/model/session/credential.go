package session

import (
	"fmt"

	"dashboard/internal/pkg/errs"
)

// Role is the authorization role of a dashboard user.
type Role int

const (
	RoleUnknown Role = iota
	RoleUser
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as invalid
	return map[Role]string{
		RoleUser:  "user",
		RoleAdmin: "admin",
	}
}

// ParseRole converts a wire string into a Role.
func ParseRole(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a known role", s))
}

// Validate checks if the Role is a member of the closed set.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire representation of the role.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// User is the minimal identity descriptor attached to a credential.
type User struct {
	ID       string
	Email    string
	Role     Role
	FullName string
}

// Credential is an opaque authentication token plus the user it belongs to.
// It is owned by the Session Guard; orders and views never embed it. The
// engine treats the token as opaque: it is presented on protected calls and
// destroyed on logout or rejection, never inspected.
//
// The zero value is invalid; construct via NewCredential.
type Credential struct {
	token string
	user  User

	isConstructed bool
}

// NewCredential creates a credential from a login or token-store record.
// Token, user id, and a valid role are required.
func NewCredential(token string, user User) (Credential, error) {
	if token == "" {
		return Credential{}, errs.NewValueIsRequiredError("token")
	}
	if user.ID == "" {
		return Credential{}, errs.NewValueIsRequiredError("user.id")
	}
	if err := user.Role.Validate(); err != nil {
		return Credential{}, err
	}

	return Credential{token: token, user: user, isConstructed: true}, nil
}

// Validate ensures the credential was created via NewCredential.
func (c Credential) Validate() error {
	if !c.isConstructed {
		return errs.NewValueIsRequiredError("credential must be created via NewCredential")
	}
	return nil
}

// Token returns the opaque authentication token.
func (c Credential) Token() string {
	return c.token
}

// User returns the identity descriptor of the credential holder.
func (c Credential) User() User {
	return c.user
}

// IsAdmin reports whether the credential holder has the admin role.
func (c Credential) IsAdmin() bool {
	return c.user.Role == RoleAdmin
}
