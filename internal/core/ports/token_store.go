package ports

import (
	"context"

	"dashboard/internal/core/domain/model/session"
)

// TokenStore is the outbound port to the durable key-value store holding
// the session credential across restarts. The engine persists nothing else.
type TokenStore interface {
	// Save persists the credential, replacing any previous one.
	Save(ctx context.Context, cred session.Credential) error

	// Load returns the persisted credential. The second return value is
	// false when no credential is stored; that is not an error.
	Load(ctx context.Context) (session.Credential, bool, error)

	// Clear removes the persisted credential. Clearing an empty store is
	// not an error.
	Clear(ctx context.Context) error
}
