package services

import (
	"context"
	"log/slog"
	"sync"

	"dashboard/internal/core/domain/model/session"
	"dashboard/internal/core/ports"
	"dashboard/internal/pkg/errs"
)

// Invalidator marks cached views stale when the session that fetched them
// ends. ViewIndex satisfies it.
type Invalidator interface {
	InvalidateAll()
}

// SessionGuard owns the single authentication credential of the dashboard.
// Protected operations obtain the token through Require, which fails locally
// with an UnauthenticatedError when no session exists, so unauthenticated
// requests never reach the network.
//
// The guard persists the credential through a TokenStore so a restart does
// not force a re-login, and reacts to remote rejection (OnRejected) by
// destroying the session and notifying the listener.
//
// All methods are safe for concurrent use.
type SessionGuard struct {
	store    ports.TokenStore
	views    Invalidator
	listener ports.SessionListener
	logger   *slog.Logger

	mu      sync.RWMutex
	current session.Credential
	active  bool
}

// NewSessionGuard creates the guard. All collaborators are required.
func NewSessionGuard(
	store ports.TokenStore,
	views Invalidator,
	listener ports.SessionListener,
	logger *slog.Logger,
) (*SessionGuard, error) {
	if store == nil {
		return nil, errs.NewValueIsRequiredError("store")
	}
	if views == nil {
		return nil, errs.NewValueIsRequiredError("views")
	}
	if listener == nil {
		return nil, errs.NewValueIsRequiredError("listener")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}

	return &SessionGuard{
		store:    store,
		views:    views,
		listener: listener,
		logger:   logger,
	}, nil
}

// Authenticated reports whether a session is currently established.
func (g *SessionGuard) Authenticated() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.active
}

// Current returns the established credential. The second return value is
// false when the session is anonymous.
func (g *SessionGuard) Current() (session.Credential, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.current, g.active
}

// Require returns the credential for a protected operation, or an
// UnauthenticatedError naming the operation when the session is anonymous.
func (g *SessionGuard) Require(operation string) (session.Credential, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.active {
		return session.Credential{}, errs.NewUnauthenticatedError(operation)
	}
	return g.current, nil
}

// Establish installs a freshly issued credential and persists it.
// Persistence is best-effort: a store failure is logged and the in-memory
// session stays valid, it just will not survive a restart.
func (g *SessionGuard) Establish(ctx context.Context, cred session.Credential) error {
	if err := cred.Validate(); err != nil {
		return err
	}

	g.mu.Lock()
	g.current = cred
	g.active = true
	g.mu.Unlock()

	if err := g.store.Save(ctx, cred); err != nil {
		g.logger.Warn("session established but not persisted", "error", err)
	}

	g.logger.Info("session established", "user", cred.User().Email)
	return nil
}

// Clear drops the credential, removes it from the store and invalidates all
// cached views. Clearing an anonymous session is a no-op.
func (g *SessionGuard) Clear(ctx context.Context) {
	g.mu.Lock()
	wasActive := g.active
	g.current = session.Credential{}
	g.active = false
	g.mu.Unlock()

	if !wasActive {
		return
	}

	if err := g.store.Clear(ctx); err != nil {
		g.logger.Warn("failed to clear persisted session", "error", err)
	}
	g.views.InvalidateAll()
	g.logger.Info("session cleared")
}

// OnRejected handles a credential rejection reported by a remote call: the
// session is destroyed exactly as in Clear, and the listener is told why it
// ended so the hosting UI can react. Safe to call from concurrent
// operations; only the first call for an active session notifies.
func (g *SessionGuard) OnRejected(ctx context.Context, operation string) {
	g.mu.Lock()
	wasActive := g.active
	g.current = session.Credential{}
	g.active = false
	g.mu.Unlock()

	if !wasActive {
		return
	}

	if err := g.store.Clear(ctx); err != nil {
		g.logger.Warn("failed to clear persisted session", "error", err)
	}
	g.views.InvalidateAll()
	g.logger.Warn("session ended, credential rejected", "operation", operation)
	g.listener.SessionEnded("credential rejected on " + operation)
}

// Restore loads a persisted credential from the store, typically at startup.
// An empty store leaves the session anonymous and is not an error. The
// restored token is not verified here; the credential probe job does that.
func (g *SessionGuard) Restore(ctx context.Context) error {
	cred, found, err := g.store.Load(ctx)
	if err != nil {
		return err
	}
	if !found {
		g.logger.Info("no persisted session, starting anonymous")
		return nil
	}
	if err := cred.Validate(); err != nil {
		return err
	}

	g.mu.Lock()
	g.current = cred
	g.active = true
	g.mu.Unlock()

	g.logger.Info("session restored", "user", cred.User().Email)
	return nil
}
