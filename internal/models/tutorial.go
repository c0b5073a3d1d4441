package models

import (
	"time"
)

type Tutorial struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null;size:200" json:"title"`
	Description string    `gorm:"not null;type:text" json:"description"`
	Content     string    `gorm:"not null;type:text" json:"content"`
	// Stored filename under the media root (e.g. "3f2a....jpg"), empty when no image
	Image     string    `gorm:"size:255" json:"image,omitempty"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP;index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	AuthorID  uint      `gorm:"not null;index" json:"author_id"`
	Author    *User     `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

func (Tutorial) TableName() string {
	return "tutorials"
}
