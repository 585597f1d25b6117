package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"dashboard/internal/core/domain/model/session"
	"dashboard/internal/core/ports"
	"dashboard/internal/pkg/errs"
)

const defaultTimeout = 10 * time.Second

var _ ports.CredentialService = (*Client)(nil)

// Client implements the CredentialService port against the CMS user API.
// The CMS expects its own "JWT" authorization scheme, unlike the order
// service's "Bearer".
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a CMS client for the given base URL.
// A non-positive timeout falls back to the default.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// Login exchanges email and password for a token-backed credential.
func (c *Client) Login(ctx context.Context, email, password string) (session.Credential, error) {
	body, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return session.Credential{}, errs.NewTransportErrorWithCause("login", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/users/login", bytes.NewReader(body))
	if err != nil {
		return session.Credential{}, errs.NewTransportErrorWithCause("login", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return session.Credential{}, errs.NewTransportErrorWithCause("login", err)
	}
	defer closeBody(resp)

	if err = classifyStatus("login", resp.StatusCode); err != nil {
		return session.Credential{}, err
	}

	var result loginResponseDTO
	if err = json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return session.Credential{}, errs.NewTransportErrorWithCause("login", err)
	}
	if result.Token == "" {
		return session.Credential{}, errs.NewTransportErrorWithCause("login",
			fmt.Errorf("login response carried no token"))
	}

	user, err := result.User.toDomain()
	if err != nil {
		return session.Credential{}, err
	}
	return session.NewCredential(result.Token, user)
}

// Logout invalidates the token on the CMS side.
func (c *Client) Logout(ctx context.Context, token string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/users/logout", nil)
	if err != nil {
		return errs.NewTransportErrorWithCause("logout", err)
	}
	setToken(req, token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.NewTransportErrorWithCause("logout", err)
	}
	defer closeBody(resp)

	return classifyStatus("logout", resp.StatusCode)
}

// Me verifies the token and returns the user it belongs to. The CMS answers
// an invalid token either with 401 or with a null user; both classify as a
// credential rejection.
func (c *Client) Me(ctx context.Context, token string) (session.User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/api/users/me", nil)
	if err != nil {
		return session.User{}, errs.NewTransportErrorWithCause("me", err)
	}
	setToken(req, token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return session.User{}, errs.NewTransportErrorWithCause("me", err)
	}
	defer closeBody(resp)

	if err = classifyStatus("me", resp.StatusCode); err != nil {
		return session.User{}, err
	}

	var result meResponseDTO
	if err = json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return session.User{}, errs.NewTransportErrorWithCause("me", err)
	}
	if result.User == nil {
		return session.User{}, errs.NewAuthRejectedError("me", resp.StatusCode)
	}

	return result.User.toDomain()
}

func setToken(req *http.Request, token string) {
	if token != "" {
		req.Header.Set("Authorization", "JWT "+token)
	}
}

func classifyStatus(operation string, statusCode int) error {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return nil
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return errs.NewAuthRejectedError(operation, statusCode)
	default:
		return errs.NewTransportError(operation, statusCode)
	}
}

func closeBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
