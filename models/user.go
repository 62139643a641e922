package models

import "time"

// User represents an account entity used for authentication, authorship,
// and the follow graph. Sensitive fields must never be exposed outside
// trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Email is the unique address the user registers and logs in with.
	Email string `json:"email"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// Bio is an optional free-text self-description.
	Bio string `json:"bio,omitempty"`

	// Avatar is an optional URL pointing to the user's avatar image.
	Avatar string `json:"avatar,omitempty"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// Never serialized and never exposed via the API.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Author is the public projection of a user embedded in post, comment,
// like, and follow responses. It intentionally carries no credential or
// audit fields.
type Author struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
}

// PublicProfile returns the public projection of the user suitable for
// embedding in resource responses.
func (u User) PublicProfile() Author {
	return Author{
		ID:     u.UserID,
		Name:   u.Name,
		Email:  u.Email,
		Avatar: u.Avatar,
	}
}

// Identity is the authenticated caller decoded from a bearer token.
// It lives for exactly one request and is never persisted.
type Identity struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}
