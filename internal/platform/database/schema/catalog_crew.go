package schema

// RefCrewTable represents the 'crew' side table (0-or-1 row per title).
// Directors and writers are comma-delimited nconst lists, decoded by pkg/idlist.
type RefCrewTable struct {
	Table     string
	TConst    string
	Directors string
	Writers   string
}

// RefCrew is the schema definition for crew
var RefCrew = RefCrewTable{
	Table:     "crew",
	TConst:    "tconst",
	Directors: "directors",
	Writers:   "writers",
}
