package auth

import (
	"errors"
)

var (
	// ErrInvalidCredentials is returned when the provided username and/or
	// password do not match a stored user.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrDBNotConfigured is returned when no database connection was
	// provided to the verifier.
	ErrDBNotConfigured = errors.New("database binding is missing, check the db section of the configuration")
)
