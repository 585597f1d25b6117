package commands

import (
	"context"

	"dashboard/internal/core/domain/model/session"
	"dashboard/internal/core/domain/services"
	"dashboard/internal/core/ports"
	"dashboard/internal/pkg/errs"
)

// LoginCommandHandler exchanges user credentials for a session through the
// credential service and establishes it in the session guard.
type LoginCommandHandler struct {
	credentials ports.CredentialService
	sessions    *services.SessionGuard
	sink        ports.NotificationSink
}

// NewLoginCommandHandler creates the handler. All collaborators are required.
func NewLoginCommandHandler(
	credentials ports.CredentialService,
	sessions *services.SessionGuard,
	sink ports.NotificationSink,
) (LoginCommandHandler, error) {
	if credentials == nil {
		return LoginCommandHandler{}, errs.NewValueIsRequiredError("credentials")
	}
	if sessions == nil {
		return LoginCommandHandler{}, errs.NewValueIsRequiredError("sessions")
	}
	if sink == nil {
		return LoginCommandHandler{}, errs.NewValueIsRequiredError("sink")
	}

	return LoginCommandHandler{
		credentials: credentials,
		sessions:    sessions,
		sink:        sink,
	}, nil
}

// Handle processes the login command and returns the established credential.
func (h *LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (session.Credential, error) {
	if err := cmd.Validate(); err != nil {
		return session.Credential{}, err
	}

	h.sink.Started("login", "")

	cred, err := h.credentials.Login(ctx, cmd.Email(), cmd.Password())
	if err != nil {
		h.sink.Failed("login", "", err)
		return session.Credential{}, err
	}

	if err = h.sessions.Establish(ctx, cred); err != nil {
		h.sink.Failed("login", "", err)
		return session.Credential{}, err
	}

	h.sink.Succeeded("login", "", cred.User().Email)
	return cred, nil
}
