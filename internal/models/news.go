package models

import "time"

// News is a published article. Comments are ordered oldest first when preloaded.
type News struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:250;not null" json:"title"`
	Text      string    `gorm:"not null" json:"text"`
	Date      time.Time `gorm:"not null;index" json:"date"`
	Comments  []Comment `gorm:"constraint:OnDelete:CASCADE" json:"comments,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Today truncates t to midnight in its own location.
func Today(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
