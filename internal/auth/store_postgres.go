// Copyright (c) 2026 Kinodex. All rights reserved.

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kinodex/kinodex/internal/platform/apperr"
	"github.com/kinodex/kinodex/internal/platform/database/schema"
	"github.com/kinodex/kinodex/internal/platform/dberr"
)

// PostgresUserRepository implements [UserRepository] using pgx.
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new PostgreSQL implementation of the UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

// Create persists a new account row, initializing its timestamps.
func (repository *PostgresUserRepository) Create(ctx context.Context, user *User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)`,
		schema.RefUserAccount.Table,
		schema.RefUserAccount.ID, schema.RefUserAccount.Email, schema.RefUserAccount.PasswordHash,
		schema.RefUserAccount.CreatedAt, schema.RefUserAccount.UpdatedAt,
	)

	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	_, err := repository.pool.Exec(ctx, query,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "user_create")
	}

	return nil
}

// FindByID retrieves an account row by its primary key.
func (repository *PostgresUserRepository) FindByID(ctx context.Context, id string) (*User, error) {
	return repository.findOne(ctx, schema.RefUserAccount.ID, id, "User not found")
}

// FindByEmail retrieves an account row by its unique email address.
func (repository *PostgresUserRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	return repository.findOne(ctx, schema.RefUserAccount.Email, email, "User not found with this email")
}

// findOne runs a single-row account lookup filtered on one column.
func (repository *PostgresUserRepository) findOne(ctx context.Context, column string, value any, notFoundMessage string) (*User, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1`,
		schema.RefUserAccount.ID, schema.RefUserAccount.Email, schema.RefUserAccount.PasswordHash,
		schema.RefUserAccount.CreatedAt, schema.RefUserAccount.UpdatedAt,
		schema.RefUserAccount.Table,
		column,
	)

	user := &User{}
	err := repository.pool.QueryRow(ctx, query, value).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound(notFoundMessage)
		}
		return nil, dberr.Wrap(err, "user_find")
	}

	return user, nil
}
