package schema

// RefPrincipalsTable represents the 'principals' billing table (many rows per
// title). ID is a bigserial surrogate key; billing order has no uniqueness
// guarantee, so ID doubles as the deterministic tie-breaker.
type RefPrincipalsTable struct {
	Table    string
	ID       string
	TConst   string
	Ordering string
	NConst   string
	Category string
}

// RefPrincipals is the schema definition for principals
var RefPrincipals = RefPrincipalsTable{
	Table:    "principals",
	ID:       "id",
	TConst:   "tconst",
	Ordering: "ordering",
	NConst:   "nconst",
	Category: "category",
}
