package cms_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dashboard/internal/adapters/out/cms"
	"dashboard/internal/core/domain/model/session"
	"dashboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustClient(t *testing.T, baseURL string) *cms.Client {
	t.Helper()
	client, err := cms.NewClient(baseURL, 2*time.Second)
	require.NoError(t, err)
	return client
}

func TestClientLogin(t *testing.T) {
	t.Run("should exchange credentials for a token", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/users/login", r.URL.Path)

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "admin@example.com", body["email"])
			assert.Equal(t, "secret", body["password"])

			_, _ = w.Write([]byte(`{
				"token": "tok-123",
				"user": {"id": "u1", "email": "admin@example.com", "role": "admin", "fullName": "Jan Kowalski"}
			}`))
		}))
		defer server.Close()

		cred, err := mustClient(t, server.URL).Login(context.Background(), "admin@example.com", "secret")

		require.NoError(t, err)
		assert.Equal(t, "tok-123", cred.Token())
		assert.Equal(t, "u1", cred.User().ID)
		assert.Equal(t, session.RoleAdmin, cred.User().Role)
		assert.Equal(t, "Jan Kowalski", cred.User().FullName)
	})

	t.Run("should classify wrong credentials as a rejection", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		_, err := mustClient(t, server.URL).Login(context.Background(), "admin@example.com", "wrong")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrAuthRejected)
	})

	t.Run("should fail on a response without a token", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"user": {"id": "u1", "role": "admin"}}`))
		}))
		defer server.Close()

		_, err := mustClient(t, server.URL).Login(context.Background(), "admin@example.com", "secret")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrTransportFailure)
	})

	t.Run("should classify an unreachable service as a transport failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		server.Close()

		_, err := mustClient(t, server.URL).Login(context.Background(), "admin@example.com", "secret")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrTransportFailure)
	})
}

func TestClientLogout(t *testing.T) {
	t.Run("should send the token with the JWT scheme", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/users/logout", r.URL.Path)
			assert.Equal(t, "JWT tok-123", r.Header.Get("Authorization"))
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		err := mustClient(t, server.URL).Logout(context.Background(), "tok-123")

		require.NoError(t, err)
	})
}

func TestClientMe(t *testing.T) {
	t.Run("should return the user behind a valid token", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/users/me", r.URL.Path)
			assert.Equal(t, "JWT tok-123", r.Header.Get("Authorization"))
			_, _ = w.Write([]byte(`{"user": {"id": "u1", "email": "admin@example.com", "role": "user"}}`))
		}))
		defer server.Close()

		user, err := mustClient(t, server.URL).Me(context.Background(), "tok-123")

		require.NoError(t, err)
		assert.Equal(t, "u1", user.ID)
		assert.Equal(t, session.RoleUser, user.Role)
	})

	t.Run("should classify a null user as a credential rejection", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"user": null}`))
		}))
		defer server.Close()

		_, err := mustClient(t, server.URL).Me(context.Background(), "expired")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrAuthRejected)
	})

	t.Run("should classify 401 as a credential rejection", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		_, err := mustClient(t, server.URL).Me(context.Background(), "expired")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrAuthRejected)
	})
}
