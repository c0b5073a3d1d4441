package models

import (
	"time"
)

// Languages a snippet can be tagged with. Validated in internal/forms
// before anything reaches the database.
var SnippetLanguages = []string{"html", "css", "js", "python", "django"}

type Snippet struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null;size:200" json:"title"`
	Code      string    `gorm:"not null;type:text" json:"code"`
	Language  string    `gorm:"not null;size:20;index" json:"language"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP;index" json:"created_at"`
	AuthorID  uint      `gorm:"not null;index" json:"author_id"`
	Author    *User     `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

func (Snippet) TableName() string {
	return "snippets"
}

func IsValidSnippetLanguage(lang string) bool {
	for _, l := range SnippetLanguages {
		if l == lang {
			return true
		}
	}
	return false
}
