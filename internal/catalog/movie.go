// Copyright (c) 2026 Kinodex. All rights reserved.

/*
Package catalog defines the movie catalog domain: a read-only, normalized
dataset of titles, ratings, crew, cast, and the query engine over it.

Core Responsibility:

  - Discovery: dynamic, filterable, paginated search over titles.
  - Detail: a denormalized movie view assembled from five independently-keyed
    tables (basics, ratings, crew, principals, names).

All catalog entities are bulk-loaded externally; this package performs no
writes to them.
*/
package catalog

// # Core Entities

// Movie is a single row of the basics title table.
//
// StartYear, EndYear, and RuntimeMinutes are pointers because the source
// dataset leaves them NULL for titles where the value is unknown.
type Movie struct {
	TConst         string `json:"tconst"`
	TitleType      string `json:"titleType"`
	PrimaryTitle   string `json:"primaryTitle"`
	OriginalTitle  string `json:"originalTitle"`
	StartYear      *int   `json:"startYear"`
	EndYear        *int   `json:"endYear"`
	RuntimeMinutes *int   `json:"runtimeMinutes"`
	Genres         string `json:"genres"`
}

// Rating is the 0-or-1 per title ratings side row. Its absence is a valid
// state, never an error.
type Rating struct {
	AverageRating float64
	NumVotes      int
}

// CrewRecord is the 0-or-1 per title crew side row. Directors and Writers are
// the raw comma-delimited person-id lists; they may be empty.
type CrewRecord struct {
	Directors string
	Writers   string
}

// # Query Types

// Filter holds the optional search parameters. Both filters are conjunctive
// when present. Year stays a string until it has passed the strict 4-digit
// validation in the service layer.
type Filter struct {
	Title string
	Year  string
}

// SearchRow is the fixed projection returned by the search endpoint.
type SearchRow struct {
	Title  string `json:"Title"`
	Year   *int   `json:"Year"`
	ImdbID string `json:"imdbID"`
	Type   string `json:"Type"`
}

// # Detail View

// RatingEntry is one formatted entry of a detail response's Ratings list.
type RatingEntry struct {
	Source string `json:"Source"`
	Value  string `json:"Value"`
}

// MovieDetail is the denormalized detail view merged from the title row and
// its optional side tables. Director, Writer, and Actors are display strings
// joined with ", "; each is empty when the underlying data is absent.
// Ratings holds zero or one entry and is never null.
type MovieDetail struct {
	Title    string        `json:"Title"`
	Year     *int          `json:"Year"`
	Runtime  string        `json:"Runtime"`
	Genre    string        `json:"Genre"`
	Director string        `json:"Director"`
	Writer   string        `json:"Writer"`
	Actors   string        `json:"Actors"`
	Ratings  []RatingEntry `json:"Ratings"`
}

// # Domain Constants

const (
	// ratingSource is the fixed label for the single catalog rating entry.
	ratingSource = "Internet Movie Database"

	// topBilledCast caps the detail view at the four lowest billing ranks.
	topBilledCast = 4

	// actorCategory selects the cast rows among all principal credits.
	actorCategory = "actor"
)
