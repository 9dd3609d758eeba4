// Package post provides CRUD operations for managing blog posts.
package post

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/inkwell-cms/inkwell/internal/db/models"
)

const (
	idQueryPattern = "id = ?"
)

var (
	// ErrPostNotFound is returned when a post is not found.
	ErrPostNotFound = errors.New("post not found")
	// ErrMissingFields is returned when title or content is empty on create/update.
	ErrMissingFields = errors.New("title and content are required")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// List retrieves all posts, newest first.
func List(db *gorm.DB) ([]models.Post, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	// non-nil so an empty table serializes as [] and not null
	posts := make([]models.Post, 0)
	result := db.Order("created_at DESC").Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}

	return posts, nil
}

// Get retrieves a post by its ID.
func Get(db *gorm.DB, id uint64) (*models.Post, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var post models.Post
	result := db.Where(idQueryPattern, id).First(&post)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, result.Error
	}

	return &post, nil
}

// Create inserts a new post. Posts are always created as published.
func Create(db *gorm.DB, post *models.Post) error {
	if db == nil {
		return ErrDBNil
	}
	if post.Title == "" || post.Content == "" {
		return ErrMissingFields
	}

	if post.Format == "" {
		post.Format = models.FormatHTML
	}

	post.Published = true

	result := db.Create(post)
	if result.Error != nil {
		return result.Error
	}

	return nil
}

// Update overwrites title, content, format and slug of the post with
// the given ID and stamps updated_at. Updating an ID that does not
// exist is not an error.
func Update(db *gorm.DB, id uint64, post *models.Post) error {
	if db == nil {
		return ErrDBNil
	}
	if post.Title == "" || post.Content == "" {
		return ErrMissingFields
	}

	if post.Format == "" {
		post.Format = models.FormatHTML
	}

	result := db.Model(&models.Post{}).Where(idQueryPattern, id).Updates(map[string]interface{}{
		"title":      post.Title,
		"content":    post.Content,
		"format":     post.Format,
		"slug":       post.Slug,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}

	return nil
}

// Delete removes a post by ID. Deleting an ID that does not exist is
// not an error.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Where(idQueryPattern, id).Delete(&models.Post{})
	if result.Error != nil {
		return result.Error
	}

	return nil
}
