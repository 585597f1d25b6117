// Package session provides the credential value object owned by the Session
// Guard: an opaque token plus the minimal user descriptor (id, email, role).
// The engine never inspects the token; it only presents it on protected
// calls and destroys it on logout or rejection.
package session
