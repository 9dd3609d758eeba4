package auth

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/inkwell-cms/inkwell/internal/db/models"
)

// CredentialVerifier checks a username/password pair against a backing
// store. It is the seam where real per-user sessions could later
// replace the static admin token without changing handler contracts.
type CredentialVerifier interface {
	Verify(username, password string) (*models.User, error)
}

// Service verifies credentials against the local database.
type Service struct {
	db *gorm.DB
}

// NewService creates a new credential verifier backed by the given database.
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Verify looks up a user matching both username and password with a
// single parameterized equality query. The password is compared in
// plaintext against the stored password_hash column; no hashing is
// performed (see models.User.PasswordHash).
func (s *Service) Verify(username, password string) (*models.User, error) {
	if s.db == nil {
		return nil, ErrDBNotConfigured
	}

	var user models.User

	err := s.db.Where("username = ? AND password_hash = ?", username, password).
		First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}

	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	return &user, nil
}
