package services

import (
	"strings"

	"github.com/aayushivora31/techblog/internal/forms"
	"github.com/aayushivora31/techblog/internal/models"

	"gorm.io/gorm"
)

const TutorialsPerPage = 6

type TutorialService struct {
	db    *gorm.DB
	audit *AuditService
}

func NewTutorialService(db *gorm.DB, audit *AuditService) *TutorialService {
	return &TutorialService{db: db, audit: audit}
}

// search applies the free-text filter to a fresh query. Case-insensitive
// substring match on title and description, explicit variant instead of
// composing ad-hoc query objects.
func (s *TutorialService) search(query string) *gorm.DB {
	tx := s.db.Model(&models.Tutorial{})
	if query != "" {
		q := "%" + strings.ToLower(query) + "%"
		tx = tx.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", q, q)
	}
	return tx
}

// List returns one page of tutorials, newest first, optionally filtered
// by a search query.
func (s *TutorialService) List(query string, page int) ([]models.Tutorial, Pagination, error) {
	var total int64
	if err := s.search(query).Count(&total).Error; err != nil {
		return nil, Pagination{}, err
	}

	p := NewPagination(page, TutorialsPerPage, total)

	var tutorials []models.Tutorial
	err := s.search(query).
		Order("created_at desc").
		Offset(p.Offset()).
		Limit(p.PerPage).
		Find(&tutorials).Error
	return tutorials, p, err
}

func (s *TutorialService) Get(id uint) (*models.Tutorial, error) {
	var tutorial models.Tutorial
	if err := s.db.First(&tutorial, id).Error; err != nil {
		return nil, err
	}
	return &tutorial, nil
}

// GetForAuthor loads a tutorial filtered on both id and author, so a
// non-owner gets gorm.ErrRecordNotFound rather than a forbidden error.
func (s *TutorialService) GetForAuthor(id, authorID uint) (*models.Tutorial, error) {
	var tutorial models.Tutorial
	if err := s.db.Where("id = ? AND author_id = ?", id, authorID).First(&tutorial).Error; err != nil {
		return nil, err
	}
	return &tutorial, nil
}

func (s *TutorialService) ListByAuthor(authorID uint) ([]models.Tutorial, error) {
	var tutorials []models.Tutorial
	err := s.db.Where("author_id = ?", authorID).Order("created_at desc").Find(&tutorials).Error
	return tutorials, err
}

func (s *TutorialService) Create(in forms.TutorialInput, image string, authorID uint, ip string) (*models.Tutorial, error) {
	tutorial := models.Tutorial{
		Title:       in.Title,
		Description: in.Description,
		Content:     in.Content,
		Image:       image,
		AuthorID:    authorID,
	}
	if err := s.db.Create(&tutorial).Error; err != nil {
		return nil, err
	}

	s.audit.LogAction(&authorID, "CREATE_TUTORIAL", itoa(tutorial.ID), map[string]interface{}{
		"title": tutorial.Title,
	}, ip)

	return &tutorial, nil
}

// Update persists new field values for a tutorial owned by authorID.
// image replaces the stored filename only when non-empty.
func (s *TutorialService) Update(id, authorID uint, in forms.TutorialInput, image string, ip string) (*models.Tutorial, error) {
	tutorial, err := s.GetForAuthor(id, authorID)
	if err != nil {
		return nil, err
	}

	tutorial.Title = in.Title
	tutorial.Description = in.Description
	tutorial.Content = in.Content
	if image != "" {
		tutorial.Image = image
	}

	if err := s.db.Save(tutorial).Error; err != nil {
		return nil, err
	}

	s.audit.LogAction(&authorID, "UPDATE_TUTORIAL", itoa(tutorial.ID), map[string]interface{}{
		"title": tutorial.Title,
	}, ip)

	return tutorial, nil
}

func (s *TutorialService) Delete(id, authorID uint, ip string) error {
	tutorial, err := s.GetForAuthor(id, authorID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(tutorial).Error; err != nil {
		return err
	}

	s.audit.LogAction(&authorID, "DELETE_TUTORIAL", itoa(id), map[string]interface{}{
		"title": tutorial.Title,
	}, ip)

	return nil
}
