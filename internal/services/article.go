package services

import (
	"strings"

	"github.com/aayushivora31/techblog/internal/forms"
	"github.com/aayushivora31/techblog/internal/models"

	"gorm.io/gorm"
)

const ArticlesPerPage = 5

type ArticleService struct {
	db    *gorm.DB
	audit *AuditService
}

func NewArticleService(db *gorm.DB, audit *AuditService) *ArticleService {
	return &ArticleService{db: db, audit: audit}
}

func (s *ArticleService) search(query string) *gorm.DB {
	tx := s.db.Model(&models.Article{})
	if query != "" {
		q := "%" + strings.ToLower(query) + "%"
		tx = tx.Where("LOWER(title) LIKE ? OR LOWER(content) LIKE ? OR LOWER(tags) LIKE ?", q, q, q)
	}
	return tx
}

func (s *ArticleService) List(query string, page int) ([]models.Article, Pagination, error) {
	var total int64
	if err := s.search(query).Count(&total).Error; err != nil {
		return nil, Pagination{}, err
	}

	p := NewPagination(page, ArticlesPerPage, total)

	var articles []models.Article
	err := s.search(query).
		Order("created_at desc").
		Offset(p.Offset()).
		Limit(p.PerPage).
		Find(&articles).Error
	return articles, p, err
}

func (s *ArticleService) Get(id uint) (*models.Article, error) {
	var article models.Article
	if err := s.db.First(&article, id).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

func (s *ArticleService) GetForAuthor(id, authorID uint) (*models.Article, error) {
	var article models.Article
	if err := s.db.Where("id = ? AND author_id = ?", id, authorID).First(&article).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

func (s *ArticleService) ListByAuthor(authorID uint) ([]models.Article, error) {
	var articles []models.Article
	err := s.db.Where("author_id = ?", authorID).Order("created_at desc").Find(&articles).Error
	return articles, err
}

func (s *ArticleService) Create(in forms.ArticleInput, authorID uint, ip string) (*models.Article, error) {
	article := models.Article{
		Title:    in.Title,
		Content:  in.Content,
		Tags:     in.Tags,
		AuthorID: authorID,
	}
	if err := s.db.Create(&article).Error; err != nil {
		return nil, err
	}

	s.audit.LogAction(&authorID, "CREATE_ARTICLE", itoa(article.ID), map[string]interface{}{
		"title": article.Title,
	}, ip)

	return &article, nil
}

func (s *ArticleService) Update(id, authorID uint, in forms.ArticleInput, ip string) (*models.Article, error) {
	article, err := s.GetForAuthor(id, authorID)
	if err != nil {
		return nil, err
	}

	article.Title = in.Title
	article.Content = in.Content
	article.Tags = in.Tags

	if err := s.db.Save(article).Error; err != nil {
		return nil, err
	}

	s.audit.LogAction(&authorID, "UPDATE_ARTICLE", itoa(article.ID), map[string]interface{}{
		"title": article.Title,
	}, ip)

	return article, nil
}

func (s *ArticleService) Delete(id, authorID uint, ip string) error {
	article, err := s.GetForAuthor(id, authorID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(article).Error; err != nil {
		return err
	}

	s.audit.LogAction(&authorID, "DELETE_ARTICLE", itoa(id), map[string]interface{}{
		"title": article.Title,
	}, ip)

	return nil
}
