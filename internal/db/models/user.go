package models

import (
	"crypto/subtle"
	"time"
)

// User represents an admin account in the system.
// Accounts are created out-of-band by the daemon seed; there is no
// signup endpoint and users are immutable through the API.
type User struct {
	// ID is the unique identifier for the user.
	ID uint64 `gorm:"primaryKey" json:"id"`
	// Username is the unique username for login.
	Username string `gorm:"unique;size:100;not null" json:"username"`
	// PasswordHash is the stored login secret. Despite the column name
	// it currently holds the plaintext password and login compares it
	// verbatim.
	// TODO: hash passwords with argon2id once the seed tooling and the
	// admin console write hashes instead of plaintext.
	PasswordHash string `gorm:"column:password_hash;size:255" json:"-"`
	// CreatedAt is the timestamp when the user was created (managed by GORM).
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is the timestamp when the user was last updated (managed by GORM).
	UpdatedAt time.Time `json:"updated_at"`
}

// VerifyPassword compares a submitted password against the stored
// password_hash column in constant time.
func (u *User) VerifyPassword(password string) bool {
	return subtle.ConstantTimeCompare([]byte(password), []byte(u.PasswordHash)) == 1
}
