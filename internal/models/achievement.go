package models

import (
	"time"
)

// Achievement kinds accepted by the add form.
const (
	AchievementMedal   = "Medal"
	AchievementDiploma = "Diploma"
	AchievementOther   = "Other"
)

// AchievementKinds lists every accepted achievement kind.
var AchievementKinds = []string{AchievementMedal, AchievementDiploma, AchievementOther}

// IsValidAchievementKind reports whether kind is one of the accepted values.
func IsValidAchievementKind(kind string) bool {
	for _, k := range AchievementKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Achievement is a single entry on a user's achievements list.
type Achievement struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Type      string    `gorm:"not null" json:"type"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
