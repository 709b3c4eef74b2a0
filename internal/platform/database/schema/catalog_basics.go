package schema

// RefBasicsTable represents the 'basics' title table
type RefBasicsTable struct {
	Table          string
	TConst         string
	TitleType      string
	PrimaryTitle   string
	OriginalTitle  string
	StartYear      string
	EndYear        string
	RuntimeMinutes string
	Genres         string
}

// RefBasics is the schema definition for basics
var RefBasics = RefBasicsTable{
	Table:          "basics",
	TConst:         "tconst",
	TitleType:      "titletype",
	PrimaryTitle:   "primarytitle",
	OriginalTitle:  "originaltitle",
	StartYear:      "startyear",
	EndYear:        "endyear",
	RuntimeMinutes: "runtimeminutes",
	Genres:         "genres",
}

func (t RefBasicsTable) Columns() []string {
	return []string{t.TConst, t.TitleType, t.PrimaryTitle, t.OriginalTitle, t.StartYear, t.EndYear, t.RuntimeMinutes, t.Genres}
}
