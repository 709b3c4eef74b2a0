package schema

// RefRatingsTable represents the 'ratings' side table (0-or-1 row per title)
type RefRatingsTable struct {
	Table         string
	TConst        string
	AverageRating string
	NumVotes      string
}

// RefRatings is the schema definition for ratings
var RefRatings = RefRatingsTable{
	Table:         "ratings",
	TConst:        "tconst",
	AverageRating: "averagerating",
	NumVotes:      "numvotes",
}
