package ports

import (
	"context"

	"dashboard/internal/core/domain/model/session"
)

// CredentialService is the outbound port to the external credential/token
// service (the CMS). Authentication protocol design is delegated entirely to
// that service; the engine only exchanges credentials through it.
type CredentialService interface {
	// Login exchanges user credentials for an authenticated session
	// credential. Failures are classified: AuthRejectedError for rejected
	// credentials, TransportError otherwise.
	Login(ctx context.Context, email, password string) (session.Credential, error)

	// Logout invalidates the token on the remote side. Callers treat this
	// as best-effort; local state is cleared regardless.
	Logout(ctx context.Context, token string) error

	// Me verifies the token and returns the user it belongs to.
	// A rejected token surfaces as an AuthRejectedError.
	Me(ctx context.Context, token string) (session.User, error)
}
