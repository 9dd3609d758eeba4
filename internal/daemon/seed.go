package daemon

import (
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/inkwell-cms/inkwell/internal/config"
	"github.com/inkwell-cms/inkwell/internal/db/models"
)

// seed creates the initial admin account if the user table is empty.
// Login compares the stored password_hash column verbatim, so the seed
// password is written as-is.
func seed(cfg *config.Config, db *gorm.DB) {
	var count int64
	db.Model(&models.User{}).Count(&count)

	if count != 0 {
		return
	}

	username := cfg.Auth.SeedUser
	if username == "" {
		username = "admin"
	}

	password := cfg.Auth.SeedPassword
	if password == "" {
		password = "changeme"
	}

	result := db.Create(
		&models.User{
			Username:     username,
			PasswordHash: password,
		},
	)
	if result.Error != nil {
		log.Error().Err(result.Error).Msg("failed to seed admin user")
		return
	}

	log.Info().Str("username", username).Msg("seeded default admin user")
}
