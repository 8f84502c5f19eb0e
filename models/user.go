package models

// User is the persisted account entity. It doubles as the authenticated
// identity that the auth middleware attaches to the request context.
// Password always holds a bcrypt digest, never plaintext.
type User struct {
	// UserID is the store-assigned identifier.
	UserID int64 `json:"id"`

	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`

	// Password is the bcrypt digest of the user's password.
	// It is never serialised.
	Password string `json:"-"`
}

// Projection returns the limited view of the user that is safe to expose
// to API clients.
func (u User) Projection() UserProjection {
	return UserProjection{
		UserID:       u.UserID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		EmailAddress: u.EmailAddress,
	}
}

// UserProjection is the public shape of a user: identity attributes only.
type UserProjection struct {
	UserID       int64  `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
}

// UserRequest is the signup payload. Pointer fields distinguish an omitted
// attribute (nil) from an explicitly empty one ("").
type UserRequest struct {
	FirstName    *string `json:"firstName"`
	LastName     *string `json:"lastName"`
	EmailAddress *string `json:"emailAddress"`
	Password     *string `json:"password"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
