package services

import (
	"github.com/aayushivora31/techblog/internal/forms"
	"github.com/aayushivora31/techblog/internal/models"

	"gorm.io/gorm"
)

const SnippetsPerPage = 10

// SnippetService covers listing with a language filter plus Create for
// the seeder. There is no edit/delete surface for snippets yet, see the
// open-question note in DESIGN.md.
type SnippetService struct {
	db    *gorm.DB
	audit *AuditService
}

func NewSnippetService(db *gorm.DB, audit *AuditService) *SnippetService {
	return &SnippetService{db: db, audit: audit}
}

func (s *SnippetService) filter(language string) *gorm.DB {
	tx := s.db.Model(&models.Snippet{})
	if language != "" {
		tx = tx.Where("language = ?", language)
	}
	return tx
}

func (s *SnippetService) List(language string, page int) ([]models.Snippet, Pagination, error) {
	var total int64
	if err := s.filter(language).Count(&total).Error; err != nil {
		return nil, Pagination{}, err
	}

	p := NewPagination(page, SnippetsPerPage, total)

	var snippets []models.Snippet
	err := s.filter(language).
		Order("created_at desc").
		Offset(p.Offset()).
		Limit(p.PerPage).
		Find(&snippets).Error
	return snippets, p, err
}

func (s *SnippetService) ListByAuthor(authorID uint) ([]models.Snippet, error) {
	var snippets []models.Snippet
	err := s.db.Where("author_id = ?", authorID).Order("created_at desc").Find(&snippets).Error
	return snippets, err
}

func (s *SnippetService) Create(in forms.SnippetInput, authorID uint, ip string) (*models.Snippet, error) {
	snippet := models.Snippet{
		Title:    in.Title,
		Code:     in.Code,
		Language: in.Language,
		AuthorID: authorID,
	}
	if err := s.db.Create(&snippet).Error; err != nil {
		return nil, err
	}

	s.audit.LogAction(&authorID, "CREATE_SNIPPET", itoa(snippet.ID), map[string]interface{}{
		"title": snippet.Title,
	}, ip)

	return &snippet, nil
}
