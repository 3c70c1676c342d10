// internal/domain/user.go
package domain

import "time"

// User represents a registered user of the bank.
type User struct {
	ID        int64     `db:"id" json:"id"`         // Primary key, BIGSERIAL in DB
	Name      string    `db:"name" json:"name"`     // Display name
	Email     string    `db:"email" json:"email"`   // Unique email, also the login identifier
	Password  string    `db:"password" json:"-"`    // bcrypt hash, never serialized
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`

	// Profile is joined in on reads; nil when the user has no profile.
	Profile *Profile `db:"-" json:"profile,omitempty"`
}

// Profile holds the identity details attached to a user.
// A user has at most one profile, created atomically with the user.
type Profile struct {
	ID             int64  `db:"id" json:"id"`
	UserID         int64  `db:"user_id" json:"user_id"`
	IdentityType   string `db:"identity_type" json:"identity_type"`
	IdentityNumber string `db:"identity_number" json:"identity_number"`
	Address        string `db:"address" json:"address"`
}

// NewUser creates a new User instance with the given credentials.
// The password is expected to be hashed already.
func NewUser(name, email, hashedPassword string) *User {
	now := time.Now().UTC()
	return &User{
		Name:      name,
		Email:     email,
		Password:  hashedPassword,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
