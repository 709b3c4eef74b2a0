package schema

// RefUserAccountTable represents the 'users' account table
type RefUserAccountTable struct {
	Table        string
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    string
	UpdatedAt    string
}

// RefUserAccount is the schema definition for users
var RefUserAccount = RefUserAccountTable{
	Table:        "users",
	ID:           "id",
	Email:        "email",
	PasswordHash: "passwordhash",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
}
