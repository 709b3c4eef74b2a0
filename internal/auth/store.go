// Copyright (c) 2026 Kinodex. All rights reserved.

package auth

import (
	"context"
	"time"
)

// UserRepository defines the data access contract for user accounts.
//
// # Implementations
//
// The canonical implementation for Kinodex is PostgreSQL (store_postgres.go).
type UserRepository interface {
	// FindByID returns the account with the given ID.
	//
	// Returns [apperr.NotFound] if the account does not exist.
	FindByID(ctx context.Context, id string) (*User, error)

	// FindByEmail returns the account with the given email.
	//
	// Returns [apperr.NotFound] if no user is registered with this email.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// Create persists a brand-new user account to the storage.
	//
	// Returns a wrapped error if the email unique constraint fails.
	Create(ctx context.Context, user *User) error
}

// SessionRepository defines the contract for storing volatile refresh-token
// sessions.
//
// # Domain Ownership
//
// Kept alongside [UserRepository] because sessions are owned entirely by the
// accounts domain, despite serving authentication security. Sessions are
// keyed by the hash of the refresh token, never the token itself.
type SessionRepository interface {
	// Set stores a session under the refresh-token hash for a limited duration.
	Set(ctx context.Context, tokenHash string, userID string, ttl time.Duration) error

	// Get retrieves the userID associated with a refresh-token hash.
	//
	// Returns [apperr.NotFound] if the session is absent or expired.
	Get(ctx context.Context, tokenHash string) (string, error)

	// Delete revokes a session. Deleting an absent session is not an error.
	Delete(ctx context.Context, tokenHash string) error
}
