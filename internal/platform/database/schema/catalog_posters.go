package schema

// RefPostersTable represents the 'posters' asset table (0-or-1 row per title)
type RefPostersTable struct {
	Table      string
	ImdbID     string
	PosterPath string
	CreatedAt  string
	UpdatedAt  string
}

// RefPosters is the schema definition for posters
var RefPosters = RefPostersTable{
	Table:      "posters",
	ImdbID:     "imdbid",
	PosterPath: "posterpath",
	CreatedAt:  "createdat",
	UpdatedAt:  "updatedat",
}
