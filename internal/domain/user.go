package domain

import "time"

// User is an account holder. Email and Username are each unique.
// HashedPassword is a bcrypt hash and is never serialised to clients.
type User struct {
	ID             int64
	Email          string
	Username       string
	HashedPassword string
	FullName       *string
	ProfilePhoto   *string
	CreatedAt      time.Time
}

// ProfileUpdate holds the self-service profile fields. Empty strings are
// ignored, so a field can be replaced but never cleared.
type ProfileUpdate struct {
	FullName     string
	ProfilePhoto string
}

// Registration is the input for creating a new account.
type Registration struct {
	Email    string
	Username string
	Password string
	FullName string
}
