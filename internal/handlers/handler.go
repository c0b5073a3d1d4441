package handlers

import (
	"log/slog"

	"github.com/aayushivora31/techblog/internal/config"
	"github.com/aayushivora31/techblog/internal/services"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Handler struct {
	cfg             config.Config
	logger          *slog.Logger
	db              *gorm.DB
	rdb             *redis.Client
	tutorialService *services.TutorialService
	articleService  *services.ArticleService
	snippetService  *services.SnippetService
	auditService    *services.AuditService
	mediaStore      *services.MediaStore
}

func NewHandler(
	cfg config.Config,
	logger *slog.Logger,
	db *gorm.DB,
	rdb *redis.Client,
	tutorialService *services.TutorialService,
	articleService *services.ArticleService,
	snippetService *services.SnippetService,
	auditService *services.AuditService,
	mediaStore *services.MediaStore,
) *Handler {
	return &Handler{
		cfg:             cfg,
		logger:          logger,
		db:              db,
		rdb:             rdb,
		tutorialService: tutorialService,
		articleService:  articleService,
		snippetService:  snippetService,
		auditService:    auditService,
		mediaStore:      mediaStore,
	}
}
