// Copyright (c) 2026 Kinodex. All rights reserved.

package catalog

import "context"

// TitleRepository defines the read-only data access contract for titles and
// their side tables.
//
// # Absence vs failure
//
// GetRating and GetCrew return (nil, nil) when the side row does not exist:
// side tables are optional and their absence must never fail a detail lookup.
// Only GetTitle treats a missing row as an error, because the title row is
// the anchor of the aggregate.
type TitleRepository interface {
	// ListTitles returns every title row, in tconst order.
	ListTitles(ctx context.Context) ([]*Movie, error)

	// SearchTitles returns a filtered, windowed page of rows plus the total
	// count over the same predicate. The count and the page MUST be computed
	// from one shared predicate; drifting predicates between the two queries
	// is a correctness bug.
	SearchTitles(ctx context.Context, filter Filter, limit, offset int) ([]SearchRow, int, error)

	// GetTitle returns the title with the given tconst.
	//
	// Returns [dberr.ErrNotFound] if the title does not exist.
	GetTitle(ctx context.Context, id string) (*Movie, error)

	// GetRating returns the rating side row, or (nil, nil) when absent.
	GetRating(ctx context.Context, id string) (*Rating, error)

	// GetCrew returns the crew side row, or (nil, nil) when absent.
	GetCrew(ctx context.Context, id string) (*CrewRecord, error)

	// ListActorIDs returns up to limit person-ids of the title's actor
	// principals, ascending by billing rank with insertion order breaking
	// ties.
	ListActorIDs(ctx context.Context, id string, limit int) ([]string, error)
}

// NameRepository batch-resolves person identifiers to display names.
type NameRepository interface {
	// ResolveNames returns a mapping of person-id to primary name for every
	// id that exists. Unknown ids are simply missing from the map — the
	// caller decides how to degrade.
	ResolveNames(ctx context.Context, ids []string) (map[string]string, error)
}
