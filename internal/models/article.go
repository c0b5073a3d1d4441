package models

import (
	"time"
)

type Article struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null;size:200" json:"title"`
	Content   string    `gorm:"not null;type:text" json:"content"`
	Tags      string    `gorm:"size:200" json:"tags"` // Comma separated free text
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP;index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	AuthorID  uint      `gorm:"not null;index" json:"author_id"`
	Author    *User     `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

func (Article) TableName() string {
	return "articles"
}
