// Copyright (c) 2026 Kinodex. All rights reserved.

// Package auth implements account registration and token-based authentication.
//
// # Architecture
//
// The entities in this file represent the "Truth" of the accounts domain.
// They have no dependencies on outer layers (databases, APIs, or libraries),
// which keeps the core logic testable and resilient to technology changes.
package auth

import (
	"time"
)

// User represents a registered Kinodex account.
//
// # Rules
//   - Email is unique and validated at the boundary.
//   - PasswordHash is generated via Bcrypt exclusively by the auth [Service].
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Explicitly omitted from JSON for security.
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Session represents an active refresh-token session.
//
// # Security Concept
//
// Access tokens (JWT) are stateless and cannot be revoked before they expire.
// To mitigate this, Kinodex pairs short-lived JWTs with long-lived sessions
// kept in Redis under the hash of the refresh token. When the JWT expires,
// the client trades the refresh token for a new pair; deleting the Redis key
// logs the session out for good.
type Session struct {
	UserID    string    `json:"user_id"`
	TokenHash string    `json:"-"` // Hashed value of the refresh token. Omitted for security.
	ExpiresAt time.Time `json:"expires_at"`
}
