// Copyright (c) 2026 Kinodex. All rights reserved.

package catalog

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kinodex/kinodex/internal/platform/database/schema"
	"github.com/kinodex/kinodex/internal/platform/dberr"
)

// # Composable Predicate

// predicate is an ordered list of SQL conditions with positional arguments.
//
// A search builds its predicate exactly once and hands the same instance to
// both the count query and the windowed data query, so the total can never be
// computed over a different filter than the page of rows.
type predicate struct {
	conditions []string
	args       []any
}

// add appends one condition. The condition string must contain a single `$%d`
// placeholder, which is bound to the next positional argument.
func (p *predicate) add(condition string, value any) {
	p.conditions = append(p.conditions, fmt.Sprintf(condition, len(p.args)+1))
	p.args = append(p.args, value)
}

// where renders the WHERE clause, or "" when no conditions were added.
func (p *predicate) where() string {
	if len(p.conditions) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(p.conditions, " AND ")
}

// extend returns the predicate's arguments plus trailing extras (LIMIT/OFFSET
// values), without mutating the shared argument slice.
func (p *predicate) extend(extras ...any) []any {
	combined := make([]any, 0, len(p.args)+len(extras))
	combined = append(combined, p.args...)
	combined = append(combined, extras...)
	return combined
}

// # Title Repository

// titleRepository implements [TitleRepository] using pgx.
type titleRepository struct {
	pool *pgxpool.Pool
}

// NewTitleRepository constructs a PostgreSQL backed title store.
func NewTitleRepository(pool *pgxpool.Pool) TitleRepository {
	return &titleRepository{pool: pool}
}

func (repository *titleRepository) ListTitles(ctx context.Context) ([]*Movie, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		ORDER BY %s ASC
	`,
		strings.Join(schema.RefBasics.Columns(), ", "),
		schema.RefBasics.Table, schema.RefBasics.TConst,
	)

	rows, err := repository.pool.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_titles")
	}
	defer rows.Close()

	var movies []*Movie
	for rows.Next() {
		m := &Movie{}
		if err := rows.Scan(
			&m.TConst, &m.TitleType, &m.PrimaryTitle, &m.OriginalTitle,
			&m.StartYear, &m.EndYear, &m.RuntimeMinutes, &m.Genres,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_title")
		}
		movies = append(movies, m)
	}

	return movies, dberr.Wrap(rows.Err(), "list_titles")
}

func (repository *titleRepository) SearchTitles(ctx context.Context, filter Filter, limit, offset int) ([]SearchRow, int, error) {
	pred := &predicate{}

	if filter.Title != "" {
		pred.add(schema.RefBasics.PrimaryTitle+" ILIKE $%d", "%"+filter.Title+"%")
	}
	if filter.Year != "" {
		// Already validated as a strict 4-digit year by the service layer.
		year, err := strconv.Atoi(filter.Year)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "parse_year_filter")
		}
		pred.add(schema.RefBasics.StartYear+" = $%d", year)
	}

	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.RefBasics.Table) + pred.where()

	var total int
	if err := repository.pool.QueryRow(ctx, countQuery, pred.args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_titles")
	}

	dataQuery := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s`,
		schema.RefBasics.PrimaryTitle, schema.RefBasics.StartYear,
		schema.RefBasics.TConst, schema.RefBasics.TitleType,
		schema.RefBasics.Table,
	) + pred.where() + fmt.Sprintf(
		" ORDER BY %s ASC LIMIT $%d OFFSET $%d",
		schema.RefBasics.TConst, len(pred.args)+1, len(pred.args)+2,
	)

	rows, err := repository.pool.Query(ctx, dataQuery, pred.extend(limit, offset)...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "search_titles")
	}
	defer rows.Close()

	var results []SearchRow
	for rows.Next() {
		var row SearchRow
		if err := rows.Scan(&row.Title, &row.Year, &row.ImdbID, &row.Type); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_search_row")
		}
		results = append(results, row)
	}

	return results, total, dberr.Wrap(rows.Err(), "search_titles")
}

func (repository *titleRepository) GetTitle(ctx context.Context, id string) (*Movie, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1
	`,
		strings.Join(schema.RefBasics.Columns(), ", "),
		schema.RefBasics.Table, schema.RefBasics.TConst,
	)

	m := &Movie{}
	err := repository.pool.QueryRow(ctx, query, id).Scan(
		&m.TConst, &m.TitleType, &m.PrimaryTitle, &m.OriginalTitle,
		&m.StartYear, &m.EndYear, &m.RuntimeMinutes, &m.Genres,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_title")
	}

	return m, nil
}

func (repository *titleRepository) GetRating(ctx context.Context, id string) (*Rating, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.RefRatings.AverageRating, schema.RefRatings.NumVotes,
		schema.RefRatings.Table, schema.RefRatings.TConst,
	)

	r := &Rating{}
	err := repository.pool.QueryRow(ctx, query, id).Scan(&r.AverageRating, &r.NumVotes)
	if err != nil {
		// A missing side row is a valid state, not an error.
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, dberr.Wrap(err, "get_rating")
	}

	return r, nil
}

func (repository *titleRepository) GetCrew(ctx context.Context, id string) (*CrewRecord, error) {
	query := fmt.Sprintf(`
		SELECT COALESCE(%s, ''), COALESCE(%s, '')
		FROM %s
		WHERE %s = $1
	`,
		schema.RefCrew.Directors, schema.RefCrew.Writers,
		schema.RefCrew.Table, schema.RefCrew.TConst,
	)

	c := &CrewRecord{}
	err := repository.pool.QueryRow(ctx, query, id).Scan(&c.Directors, &c.Writers)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, dberr.Wrap(err, "get_crew")
	}

	return c, nil
}

func (repository *titleRepository) ListActorIDs(ctx context.Context, id string, limit int) ([]string, error) {
	// Billing rank has no uniqueness guarantee; the serial row id breaks
	// ties so repeated calls return the same cast in the same order.
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1 AND %s = $2
		ORDER BY %s ASC, %s ASC
		LIMIT $3
	`,
		schema.RefPrincipals.NConst,
		schema.RefPrincipals.Table,
		schema.RefPrincipals.TConst, schema.RefPrincipals.Category,
		schema.RefPrincipals.Ordering, schema.RefPrincipals.ID,
	)

	rows, err := repository.pool.Query(ctx, query, id, actorCategory, limit)
	if err != nil {
		return nil, dberr.Wrap(err, "list_actor_ids")
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var nconst string
		if err := rows.Scan(&nconst); err != nil {
			return nil, dberr.Wrap(err, "scan_actor_id")
		}
		ids = append(ids, nconst)
	}

	return ids, dberr.Wrap(rows.Err(), "list_actor_ids")
}

// # Name Repository

// nameRepository implements [NameRepository] using pgx.
type nameRepository struct {
	pool *pgxpool.Pool
}

// NewNameRepository constructs a PostgreSQL backed name store.
func NewNameRepository(pool *pgxpool.Pool) NameRepository {
	return &nameRepository{pool: pool}
}

func (repository *nameRepository) ResolveNames(ctx context.Context, ids []string) (map[string]string, error) {
	if len(ids) == 0 {
		return map[string]string{}, nil
	}

	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM %s
		WHERE %s = ANY($1)
	`,
		schema.RefNames.NConst, schema.RefNames.PrimaryName,
		schema.RefNames.Table, schema.RefNames.NConst,
	)

	rows, err := repository.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, dberr.Wrap(err, "resolve_names")
	}
	defer rows.Close()

	lookup := make(map[string]string, len(ids))
	for rows.Next() {
		var nconst, primaryName string
		if err := rows.Scan(&nconst, &primaryName); err != nil {
			return nil, dberr.Wrap(err, "scan_name")
		}
		lookup[nconst] = primaryName
	}

	return lookup, dberr.Wrap(rows.Err(), "resolve_names")
}
