package commands

import (
	"context"
	"errors"

	"dashboard/internal/core/domain/services"
	"dashboard/internal/core/ports"
	"dashboard/internal/pkg/errs"
)

// VerifySessionCommandHandler asks the credential service whether the
// current token is still accepted. A rejection ends the session; transport
// failures are returned as-is and leave the session untouched, since an
// unreachable credential service says nothing about token validity.
type VerifySessionCommandHandler struct {
	credentials ports.CredentialService
	sessions    *services.SessionGuard
}

// NewVerifySessionCommandHandler creates the handler. All collaborators are
// required.
func NewVerifySessionCommandHandler(
	credentials ports.CredentialService,
	sessions *services.SessionGuard,
) (VerifySessionCommandHandler, error) {
	if credentials == nil {
		return VerifySessionCommandHandler{}, errs.NewValueIsRequiredError("credentials")
	}
	if sessions == nil {
		return VerifySessionCommandHandler{}, errs.NewValueIsRequiredError("sessions")
	}

	return VerifySessionCommandHandler{
		credentials: credentials,
		sessions:    sessions,
	}, nil
}

// Handle probes the token. An anonymous session needs no probe and succeeds
// immediately.
func (h *VerifySessionCommandHandler) Handle(ctx context.Context, cmd VerifySessionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	cred, active := h.sessions.Current()
	if !active {
		return nil
	}

	if _, err := h.credentials.Me(ctx, cred.Token()); err != nil {
		if errors.Is(err, errs.ErrAuthRejected) {
			h.sessions.OnRejected(ctx, "session-probe")
		}
		return err
	}

	return nil
}
