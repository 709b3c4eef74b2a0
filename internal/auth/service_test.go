// Copyright (c) 2026 Kinodex. All rights reserved.

package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinodex/kinodex/internal/auth"
	"github.com/kinodex/kinodex/internal/platform/apperr"
	"github.com/kinodex/kinodex/internal/platform/sec"
)

// fakeUserRepository keeps accounts in memory, indexed by id and email.
type fakeUserRepository struct {
	byID    map[string]*auth.User
	byEmail map[string]*auth.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{
		byID:    map[string]*auth.User{},
		byEmail: map[string]*auth.User{},
	}
}

func (f *fakeUserRepository) FindByID(_ context.Context, id string) (*auth.User, error) {
	user, ok := f.byID[id]
	if !ok {
		return nil, apperr.NotFound("User not found")
	}
	return user, nil
}

func (f *fakeUserRepository) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, apperr.NotFound("User not found with this email")
	}
	return user, nil
}

func (f *fakeUserRepository) Create(_ context.Context, user *auth.User) error {
	f.byID[user.ID] = user
	f.byEmail[user.Email] = user
	return nil
}

// fakeSessionRepository mimics the Redis key/value session store.
type fakeSessionRepository struct {
	sessions map[string]string
}

func newFakeSessionRepository() *fakeSessionRepository {
	return &fakeSessionRepository{sessions: map[string]string{}}
}

func (f *fakeSessionRepository) Set(_ context.Context, tokenHash, userID string, _ time.Duration) error {
	f.sessions[tokenHash] = userID
	return nil
}

func (f *fakeSessionRepository) Get(_ context.Context, tokenHash string) (string, error) {
	userID, ok := f.sessions[tokenHash]
	if !ok {
		return "", apperr.NotFound("Session is invalid or expired")
	}
	return userID, nil
}

func (f *fakeSessionRepository) Delete(_ context.Context, tokenHash string) error {
	delete(f.sessions, tokenHash)
	return nil
}

// fakeTokenProvider issues predictable access tokens.
type fakeTokenProvider struct{}

func (fakeTokenProvider) GenerateAccessToken(userID, _ string, _ time.Duration) (string, error) {
	return "jwt-for-" + userID, nil
}

func newAuthService(users *fakeUserRepository, sessions *fakeSessionRepository) *auth.Service {
	return auth.NewService(users, sessions, fakeTokenProvider{})
}

/*
TestService_Register covers account creation, password hashing, and the
duplicate-email conflict.
*/
func TestService_Register(t *testing.T) {
	users := newFakeUserRepository()
	service := newAuthService(users, newFakeSessionRepository())

	user, err := service.Register(context.Background(), auth.RegisterInput{
		Email:    "viewer@kinodex.app",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "viewer@kinodex.app", user.Email)
	assert.NotEqual(t, "correct horse", user.PasswordHash, "password must never be stored in plain text")
	assert.True(t, sec.CheckPasswordHash("correct horse", user.PasswordHash))

	_, err = service.Register(context.Background(), auth.RegisterInput{
		Email:    "viewer@kinodex.app",
		Password: "another pass",
	})
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "CONFLICT", ae.Code)
}

/*
TestService_Login verifies credential checking and session issuance.
*/
func TestService_Login(t *testing.T) {
	users := newFakeUserRepository()
	sessions := newFakeSessionRepository()
	service := newAuthService(users, sessions)

	registered, err := service.Register(context.Background(), auth.RegisterInput{
		Email:    "viewer@kinodex.app",
		Password: "correct horse",
	})
	require.NoError(t, err)

	t.Run("valid_credentials", func(t *testing.T) {
		session, err := service.Login(context.Background(), auth.LoginInput{
			Email:    "viewer@kinodex.app",
			Password: "correct horse",
		})
		require.NoError(t, err)
		assert.Equal(t, "jwt-for-"+registered.ID, session.AccessToken)
		assert.NotEmpty(t, session.RefreshToken)
		assert.True(t, session.RefreshTokenExpiresAt.After(time.Now()))

		// The stored session is keyed by the hash, never the raw token.
		_, raw := sessions.sessions[session.RefreshToken]
		assert.False(t, raw)
		userID, err := sessions.Get(context.Background(), sec.HashToken(session.RefreshToken))
		require.NoError(t, err)
		assert.Equal(t, registered.ID, userID)
	})

	t.Run("wrong_password", func(t *testing.T) {
		_, err := service.Login(context.Background(), auth.LoginInput{
			Email:    "viewer@kinodex.app",
			Password: "wrong",
		})
		require.Error(t, err)
		assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)
	})

	t.Run("unknown_email", func(t *testing.T) {
		_, err := service.Login(context.Background(), auth.LoginInput{
			Email:    "ghost@kinodex.app",
			Password: "correct horse",
		})
		require.Error(t, err)
		assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)
	})
}

/*
TestService_RefreshSession checks refresh-token rotation: a used token must
be revoked and replaced by a fresh one.
*/
func TestService_RefreshSession(t *testing.T) {
	users := newFakeUserRepository()
	sessions := newFakeSessionRepository()
	service := newAuthService(users, sessions)

	_, err := service.Register(context.Background(), auth.RegisterInput{
		Email:    "viewer@kinodex.app",
		Password: "correct horse",
	})
	require.NoError(t, err)

	login, err := service.Login(context.Background(), auth.LoginInput{
		Email:    "viewer@kinodex.app",
		Password: "correct horse",
	})
	require.NoError(t, err)

	refreshed, err := service.RefreshSession(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)

	// The old token was rotated out and must be rejected on replay.
	_, err = service.RefreshSession(context.Background(), login.RefreshToken)
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)

	// The new token stays valid.
	_, err = service.RefreshSession(context.Background(), refreshed.RefreshToken)
	assert.NoError(t, err)
}

/*
TestService_Logout verifies session revocation and its idempotency.
*/
func TestService_Logout(t *testing.T) {
	users := newFakeUserRepository()
	sessions := newFakeSessionRepository()
	service := newAuthService(users, sessions)

	_, err := service.Register(context.Background(), auth.RegisterInput{
		Email:    "viewer@kinodex.app",
		Password: "correct horse",
	})
	require.NoError(t, err)

	login, err := service.Login(context.Background(), auth.LoginInput{
		Email:    "viewer@kinodex.app",
		Password: "correct horse",
	})
	require.NoError(t, err)

	require.NoError(t, service.Logout(context.Background(), login.RefreshToken))

	_, err = service.RefreshSession(context.Background(), login.RefreshToken)
	require.Error(t, err)

	// Revoking an already-dead token is still a success.
	assert.NoError(t, service.Logout(context.Background(), login.RefreshToken))
}
