package models

import (
	"time"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"unique;not null;size:80" json:"username"`
	Email        string    `gorm:"size:120" json:"email"`
	PasswordHash string    `gorm:"not null;size:255" json:"-"`
	CreatedAt    time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	Tutorials    []Tutorial `gorm:"foreignKey:AuthorID" json:"tutorials,omitempty"`
	Articles     []Article  `gorm:"foreignKey:AuthorID" json:"articles,omitempty"`
	Snippets     []Snippet  `gorm:"foreignKey:AuthorID" json:"snippets,omitempty"`
}
