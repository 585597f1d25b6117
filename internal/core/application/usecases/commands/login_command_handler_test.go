package commands_test

import (
	"context"
	"testing"

	"dashboard/internal/core/application/usecases/commands"
	"dashboard/internal/core/domain/model/session"
	"dashboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewLoginCommand(t *testing.T) {
	t.Run("should require email and password", func(t *testing.T) {
		_, err := commands.NewLoginCommand("", "secret")
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = commands.NewLoginCommand("admin@example.com", "")
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject a command created without the constructor", func(t *testing.T) {
		var cmd commands.LoginCommand

		assert.ErrorIs(t, cmd.Validate(), commands.ErrLoginCommandIsNotConstructed)
	})
}

func TestLoginCommandHandler(t *testing.T) {
	t.Run("should establish the session returned by the credential service", func(t *testing.T) {
		sessions, _ := newTestSessions(t, false)
		credentials := &MockCredentialService{}
		credentials.On("Login", mock.Anything, "admin@example.com", "secret").
			Return(testCredential(t), nil)
		sink := &MockNotificationSink{}
		sink.On("Started", "login", "").Return()
		sink.On("Succeeded", "login", "", "admin@example.com").Return()

		handler, err := commands.NewLoginCommandHandler(credentials, sessions, sink)
		require.NoError(t, err)
		cmd, err := commands.NewLoginCommand("admin@example.com", "secret")
		require.NoError(t, err)

		cred, err := handler.Handle(context.Background(), cmd)

		require.NoError(t, err)
		assert.Equal(t, "tok-123", cred.Token())
		assert.True(t, sessions.Authenticated())
		sink.AssertExpectations(t)
	})

	t.Run("should stay anonymous when credentials are rejected", func(t *testing.T) {
		sessions, _ := newTestSessions(t, false)
		credentials := &MockCredentialService{}
		credentials.On("Login", mock.Anything, mock.Anything, mock.Anything).
			Return(session.Credential{}, errs.NewAuthRejectedError("login", 401))
		sink := &MockNotificationSink{}
		sink.On("Started", "login", "").Return()
		sink.On("Failed", "login", "", mock.Anything).Return()

		handler, err := commands.NewLoginCommandHandler(credentials, sessions, sink)
		require.NoError(t, err)
		cmd, err := commands.NewLoginCommand("admin@example.com", "wrong")
		require.NoError(t, err)

		_, err = handler.Handle(context.Background(), cmd)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrAuthRejected)
		assert.False(t, sessions.Authenticated())
		sink.AssertExpectations(t)
	})
}
