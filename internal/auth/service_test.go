package auth

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/inkwell-cms/inkwell/internal/db/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(&models.User{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func TestVerify(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.Create(&models.User{
		Username:     "admin",
		PasswordHash: "changeme",
	}).Error)

	testCases := []struct {
		name          string
		service       *Service
		username      string
		password      string
		expectedError error
	}{
		{
			name:          "missing database binding",
			service:       NewService(nil),
			username:      "admin",
			password:      "changeme",
			expectedError: ErrDBNotConfigured,
		},
		{
			name:     "valid credentials",
			service:  NewService(db),
			username: "admin",
			password: "changeme",
		},
		{
			name:          "wrong password",
			service:       NewService(db),
			username:      "admin",
			password:      "nope",
			expectedError: ErrInvalidCredentials,
		},
		{
			name:          "unknown user",
			service:       NewService(db),
			username:      "ghost",
			password:      "changeme",
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			user, err := tc.service.Verify(tc.username, tc.password)

			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, user)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, user)
			assert.Equal(t, tc.username, user.Username)
		})
	}
}

func TestVerifyPasswordIsComparedVerbatim(t *testing.T) {
	db := setupTestDB(t)

	// the password_hash column holds the plaintext secret; nothing is hashed
	require.NoError(t, db.Create(&models.User{
		Username:     "admin",
		PasswordHash: "plain-secret",
	}).Error)

	s := NewService(db)

	user, err := s.Verify("admin", "plain-secret")
	require.NoError(t, err)
	assert.Equal(t, "plain-secret", user.PasswordHash)
}
