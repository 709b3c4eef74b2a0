// Copyright (c) 2026 Kinodex. All rights reserved.

package poster

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kinodex/kinodex/internal/platform/database/schema"
	"github.com/kinodex/kinodex/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL implementation of the poster Repository.
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// FindByImdbID retrieves the poster row for one title.
func (repository *PostgresRepository) FindByImdbID(ctx context.Context, imdbID string) (*Poster, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		WHERE %s = $1`,
		schema.RefPosters.ImdbID, schema.RefPosters.PosterPath,
		schema.RefPosters.CreatedAt, schema.RefPosters.UpdatedAt,
		schema.RefPosters.Table,
		schema.RefPosters.ImdbID,
	)

	record := &Poster{}
	err := repository.pool.QueryRow(ctx, query, imdbID).Scan(
		&record.ImdbID,
		&record.AssetPath,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "poster_find")
	}

	return record, nil
}

// Upsert inserts the poster row or refreshes its path and updated timestamp.
func (repository *PostgresRepository) Upsert(ctx context.Context, record *Poster) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (%s) DO UPDATE
		SET %s = EXCLUDED.%s, %s = EXCLUDED.%s`,
		schema.RefPosters.Table,
		schema.RefPosters.ImdbID, schema.RefPosters.PosterPath,
		schema.RefPosters.CreatedAt, schema.RefPosters.UpdatedAt,
		schema.RefPosters.ImdbID,
		schema.RefPosters.PosterPath, schema.RefPosters.PosterPath,
		schema.RefPosters.UpdatedAt, schema.RefPosters.UpdatedAt,
	)

	now := time.Now()
	if record.CreatedAt.IsZero() {
		record.CreatedAt = now
	}
	record.UpdatedAt = now

	_, err := repository.pool.Exec(ctx, query,
		record.ImdbID,
		record.AssetPath,
		record.CreatedAt,
		record.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "poster_upsert")
	}

	return nil
}
