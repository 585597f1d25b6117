package commands

import (
	"context"
	"log/slog"

	"dashboard/internal/core/domain/services"
	"dashboard/internal/core/ports"
	"dashboard/internal/pkg/errs"
)

// LogoutCommandHandler ends the session. Remote invalidation is best-effort:
// the local session is always destroyed and the command succeeds even when
// the credential service is unreachable, so the operator is never stuck
// logged in. A failed remote logout is only logged.
type LogoutCommandHandler struct {
	credentials ports.CredentialService
	sessions    *services.SessionGuard
	sink        ports.NotificationSink
	logger      *slog.Logger
}

// NewLogoutCommandHandler creates the handler. All collaborators are required.
func NewLogoutCommandHandler(
	credentials ports.CredentialService,
	sessions *services.SessionGuard,
	sink ports.NotificationSink,
	logger *slog.Logger,
) (LogoutCommandHandler, error) {
	if credentials == nil {
		return LogoutCommandHandler{}, errs.NewValueIsRequiredError("credentials")
	}
	if sessions == nil {
		return LogoutCommandHandler{}, errs.NewValueIsRequiredError("sessions")
	}
	if sink == nil {
		return LogoutCommandHandler{}, errs.NewValueIsRequiredError("sink")
	}
	if logger == nil {
		return LogoutCommandHandler{}, errs.NewValueIsRequiredError("logger")
	}

	return LogoutCommandHandler{
		credentials: credentials,
		sessions:    sessions,
		sink:        sink,
		logger:      logger,
	}, nil
}

// Handle processes the logout command. Logging out of an anonymous session
// succeeds without touching the credential service.
func (h *LogoutCommandHandler) Handle(ctx context.Context, cmd LogoutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	h.sink.Started("logout", "")

	cred, active := h.sessions.Current()
	if active {
		if err := h.credentials.Logout(ctx, cred.Token()); err != nil {
			h.logger.Warn("remote logout failed, session cleared locally", "error", err)
		}
		h.sessions.Clear(ctx)
	}

	h.sink.Succeeded("logout", "", "")
	return nil
}
