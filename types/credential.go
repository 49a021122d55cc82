package types

import "time"

// Credential is a registered user as held by the credential store.
// Records are created on signup and never updated or deleted.
type Credential struct {
	// Username is the unique, case-sensitive login name.
	Username string `json:"username"`

	// PasswordHash is the lowercase hex SHA-256 digest of the password.
	// This field is never exposed in API responses.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the signup was accepted.
	CreatedAt time.Time `json:"created_at"`
}
