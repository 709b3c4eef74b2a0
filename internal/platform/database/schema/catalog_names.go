package schema

// RefNamesTable represents the 'names' person table
type RefNamesTable struct {
	Table       string
	NConst      string
	PrimaryName string
}

// RefNames is the schema definition for names
var RefNames = RefNamesTable{
	Table:       "names",
	NConst:      "nconst",
	PrimaryName: "primaryname",
}
