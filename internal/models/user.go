// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// DefaultImageFile is the sentinel profile picture assigned to new accounts.
const DefaultImageFile = "default.jpg"

// User represents a registered account.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:20;unique;not null" json:"username"`
	Email     string    `gorm:"size:120;unique;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	ImageFile string    `gorm:"size:64;not null;default:default.jpg" json:"image_file"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Portfolio    *Portfolio    `gorm:"foreignKey:UserID" json:"portfolio,omitempty"`
	Achievements []Achievement `gorm:"foreignKey:UserID" json:"achievements,omitempty"`
}
