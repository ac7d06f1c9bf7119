package models

import (
	"time"
)

// Default portfolio colors, applied when the creator leaves them blank.
const (
	DefaultBackgroundColor = "#add8e6"
	DefaultFontColor       = "black"
)

// Portfolio is the single showcase record a user owns. The unique index on
// UserID enforces the one-portfolio-per-user invariant at the storage layer,
// closing the race between two concurrent create attempts.
type Portfolio struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Title           string    `gorm:"not null" json:"title"`
	Author          string    `json:"author"`
	Content         string    `gorm:"type:text" json:"content"`
	About           string    `gorm:"type:text" json:"about"`
	Link            string    `json:"link"`
	Avg             string    `json:"avg"`
	School          string    `json:"school"`
	BackgroundColor string    `json:"background_color"`
	FontColor       string    `json:"font_color"`
	UserID          uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
