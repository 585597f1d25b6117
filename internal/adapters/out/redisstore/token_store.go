package redisstore

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"dashboard/internal/core/domain/model/session"
	"dashboard/internal/core/ports"
	"dashboard/internal/pkg/errs"
)

// sessionKey holds the single persisted credential. The dashboard runs one
// session at a time, so the key is fixed.
const sessionKey = "dashboard:session"

var _ ports.TokenStore = (*TokenStore)(nil)

// sessionRecordDTO is the stored shape of a credential.
type sessionRecordDTO struct {
	Token    string `json:"token"`
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	FullName string `json:"full_name"`
}

// TokenStore persists the session credential in Redis so a dashboard restart
// does not force a re-login. The token lives until logout or rejection; its
// actual validity is decided by the credential service, not by a TTL here.
type TokenStore struct {
	client *redis.Client
}

// NewTokenStore creates a store over an initialized Redis client.
func NewTokenStore(client *redis.Client) (*TokenStore, error) {
	if client == nil {
		return nil, errs.NewValueIsRequiredError("client")
	}
	return &TokenStore{client: client}, nil
}

// Save persists the credential, replacing any previous one.
func (s *TokenStore) Save(ctx context.Context, cred session.Credential) error {
	if err := cred.Validate(); err != nil {
		return err
	}

	record := sessionRecordDTO{
		Token:    cred.Token(),
		UserID:   cred.User().ID,
		Email:    cred.User().Email,
		Role:     cred.User().Role.String(),
		FullName: cred.User().FullName,
	}
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, sessionKey, data, 0).Err()
}

// Load returns the persisted credential, or found=false on an empty store.
// A record that no longer parses is treated as absent and removed.
func (s *TokenStore) Load(ctx context.Context) (session.Credential, bool, error) {
	data, err := s.client.Get(ctx, sessionKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return session.Credential{}, false, nil
	}
	if err != nil {
		return session.Credential{}, false, err
	}

	var record sessionRecordDTO
	if err = json.Unmarshal(data, &record); err != nil {
		_ = s.client.Del(ctx, sessionKey).Err()
		return session.Credential{}, false, nil
	}

	role, err := session.ParseRole(record.Role)
	if err != nil {
		_ = s.client.Del(ctx, sessionKey).Err()
		return session.Credential{}, false, nil
	}

	cred, err := session.NewCredential(record.Token, session.User{
		ID:       record.UserID,
		Email:    record.Email,
		Role:     role,
		FullName: record.FullName,
	})
	if err != nil {
		_ = s.client.Del(ctx, sessionKey).Err()
		return session.Credential{}, false, nil
	}

	return cred, true, nil
}

// Clear removes the persisted credential. Clearing an empty store succeeds.
func (s *TokenStore) Clear(ctx context.Context) error {
	return s.client.Del(ctx, sessionKey).Err()
}
