// Package setting provides read and upsert operations for site settings.
package setting

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/inkwell-cms/inkwell/internal/db/models"
)

var (
	// ErrSettingKeyEmpty is returned when attempting to write a setting with an empty key.
	ErrSettingKeyEmpty = errors.New("setting key cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// GetAll retrieves all settings folded into a flat key to value map.
// Duplicate keys cannot occur because Set uses upsert semantics.
func GetAll(db *gorm.DB) (map[string]string, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var settings []models.Setting
	result := db.Find(&settings)
	if result.Error != nil {
		return nil, result.Error
	}

	out := make(map[string]string, len(settings))
	for _, s := range settings {
		out[s.Key] = s.Value
	}

	return out, nil
}

// Set creates or replaces a single setting by key (upsert, last writer wins).
func Set(db *gorm.DB, key, value string) error {
	if db == nil {
		return ErrDBNil
	}
	if key == "" {
		return ErrSettingKeyEmpty
	}

	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&models.Setting{Key: key, Value: value})
	if result.Error != nil {
		return result.Error
	}

	return nil
}

// SetAll upserts every key of the given map as an independent
// statement. The writes are not wrapped in a transaction: a failure
// mid-loop leaves previously written keys persisted.
func SetAll(db *gorm.DB, values map[string]string) error {
	if db == nil {
		return ErrDBNil
	}

	for key, value := range values {
		if err := Set(db, key, value); err != nil {
			return err
		}
	}

	return nil
}
