// Copyright (c) 2026 Kinodex. All rights reserved.

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kinodex/kinodex/internal/platform/apperr"
	"github.com/kinodex/kinodex/internal/platform/constants"
)

// RedisSessionRepository implements [SessionRepository] using Redis.
//
// # Why Redis?
//
// Refresh sessions are volatile by nature: they carry a TTL, are looked up on
// every token refresh, and hold no relational data. Redis handles the expiry
// for free, so revocation is a key delete and cleanup needs no background job.
type RedisSessionRepository struct {
	client *redis.Client
}

// NewSessionRepository creates a new Redis-backed SessionRepository.
func NewSessionRepository(client *redis.Client) *RedisSessionRepository {
	return &RedisSessionRepository{client: client}
}

// Set stores a session keyed by refresh-token hash with the given TTL.
func (repository *RedisSessionRepository) Set(ctx context.Context, tokenHash string, userID string, ttl time.Duration) error {
	key := constants.RedisPrefixSession + tokenHash

	if err := repository.client.Set(ctx, key, userID, ttl).Err(); err != nil {
		return fmt.Errorf("redis_session_set_failed: %w", err)
	}

	return nil
}

// Get retrieves the userID behind a refresh-token hash.
//
// Returns [apperr.NotFound] if the session is absent or expired; Redis expiry
// and explicit revocation are indistinguishable to the caller.
func (repository *RedisSessionRepository) Get(ctx context.Context, tokenHash string) (string, error) {
	key := constants.RedisPrefixSession + tokenHash

	userID, err := repository.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", apperr.NotFound("Session is invalid or expired")
		}
		return "", fmt.Errorf("redis_session_get_failed: %w", err)
	}

	return userID, nil
}

// Delete revokes a session. Deleting an absent key is a no-op.
func (repository *RedisSessionRepository) Delete(ctx context.Context, tokenHash string) error {
	key := constants.RedisPrefixSession + tokenHash

	if err := repository.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis_session_delete_failed: %w", err)
	}

	return nil
}
