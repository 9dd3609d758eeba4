// Package models contains database model definitions.
package models

import (
	"time"
)

// FormatHTML is the default content format for posts.
const FormatHTML = "html"

// Post represents a blog post.
type Post struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Format    string    `gorm:"size:32;not null;default:'html'" json:"format"`
	Slug      string    `gorm:"size:255" json:"slug"`
	Published bool      `gorm:"not null" json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
