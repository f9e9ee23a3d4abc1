package models

// User represents an application account. Accounts are created implicitly on
// first login with a name and email and are never mutated afterwards; repeat
// logins resolve to the existing record.
type User struct {
	// ID is the internal database identifier. It is not exposed via JSON
	// and is used only at the persistence layer.
	ID int64 `json:"-"`

	// Name is the full name the user logged in with.
	Name string `json:"name"`

	// Email is the unique email address of the user.
	Email string `json:"email"`

	// UniqueID is the public account identifier, derived from the
	// normalized surname plus a disambiguating integer suffix
	// ("smith1", "smith2", ...). Suffixes are scoped per surname.
	UniqueID string `json:"unique_id"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
