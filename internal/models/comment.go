package models

import "time"

type Comment struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	NewsID   uint      `gorm:"not null;index" json:"news_id"`
	AuthorID uint      `gorm:"not null;index" json:"author_id"`
	Author   User      `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author"`
	Text     string    `gorm:"not null" json:"text"`
	Created  time.Time `gorm:"autoCreateTime;index" json:"created"`
}
