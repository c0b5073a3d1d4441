// Command seed populates the database with a default user and sample
// content. It is idempotent: records whose title (or username) already
// exists are skipped, so it is safe to run repeatedly.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/aayushivora31/techblog/internal/config"
	"github.com/aayushivora31/techblog/internal/forms"
	"github.com/aayushivora31/techblog/internal/models"
	"github.com/aayushivora31/techblog/internal/repository"
	"github.com/aayushivora31/techblog/internal/services"
	"github.com/aayushivora31/techblog/pkg/utils"

	"gorm.io/gorm"
)

const (
	seedUsername = "admin"
	seedEmail    = "admin@example.com"
	seedPassword = "admin123"
)

var seedTutorials = []forms.TutorialInput{
	{
		Title:       "Getting Started with Python",
		Description: "Learn the basics of Python programming language",
		Content:     "Python is a high-level programming language...",
	},
	{
		Title:       "Django Web Development",
		Description: "Build web applications with Django framework",
		Content:     "Django is a high-level Python web framework...",
	},
	{
		Title:       "JavaScript Fundamentals",
		Description: "Master the essentials of JavaScript",
		Content:     "JavaScript is the programming language of the web...",
	},
}

var seedArticles = []forms.ArticleInput{
	{
		Title:   "The Future of Web Development",
		Content: "Web development is constantly evolving...",
	},
	{
		Title:   "Best Practices for Code Quality",
		Content: "Writing clean, maintainable code is essential...",
	},
	{
		Title:   "Understanding RESTful APIs",
		Content: "REST APIs are the backbone of modern web services...",
	},
}

var seedSnippets = []forms.SnippetInput{
	{
		Title:    "Hello World in Python",
		Code:     `print("Hello, World!")`,
		Language: "python",
	},
	{
		Title:    "CSS Flexbox Example",
		Code:     ".container { display: flex; justify-content: center; align-items: center; }",
		Language: "css",
	},
	{
		Title:    "JavaScript Array Map",
		Code:     "const doubled = numbers.map(num => num * 2);",
		Language: "js",
	},
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := Run(logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func Run(logger *slog.Logger) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := repository.InitDB(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	if strings.HasPrefix(cfg.DatabaseURL, "postgres") {
		if err := repository.RunMigrations(cfg.DatabaseURL, ""); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	} else {
		if err := repository.AutoMigrate(db); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
	}

	return Seed(db, logger)
}

func Seed(db *gorm.DB, logger *slog.Logger) error {
	user, err := ensureUser(db, logger)
	if err != nil {
		return err
	}

	audit := services.NewAuditService(db, logger)
	tutorials := services.NewTutorialService(db, audit)
	articles := services.NewArticleService(db, audit)
	snippets := services.NewSnippetService(db, audit)

	for _, in := range seedTutorials {
		var existing models.Tutorial
		err := db.Where("title = ?", in.Title).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if _, err := tutorials.Create(in, "", user.ID, ""); err != nil {
			return fmt.Errorf("failed to seed tutorial %q: %w", in.Title, err)
		}
		logger.Info("Created tutorial", "title", in.Title)
	}

	for _, in := range seedArticles {
		var existing models.Article
		err := db.Where("title = ?", in.Title).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if _, err := articles.Create(in, user.ID, ""); err != nil {
			return fmt.Errorf("failed to seed article %q: %w", in.Title, err)
		}
		logger.Info("Created article", "title", in.Title)
	}

	for _, in := range seedSnippets {
		var existing models.Snippet
		err := db.Where("title = ?", in.Title).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if _, err := snippets.Create(in, user.ID, ""); err != nil {
			return fmt.Errorf("failed to seed snippet %q: %w", in.Title, err)
		}
		logger.Info("Created snippet", "title", in.Title)
	}

	var tutorialCount, articleCount, snippetCount int64
	db.Model(&models.Tutorial{}).Count(&tutorialCount)
	db.Model(&models.Article{}).Count(&articleCount)
	db.Model(&models.Snippet{}).Count(&snippetCount)
	logger.Info("Sample data population complete",
		"tutorials", tutorialCount,
		"articles", articleCount,
		"snippets", snippetCount,
	)

	return nil
}

func ensureUser(db *gorm.DB, logger *slog.Logger) (*models.User, error) {
	var user models.User
	err := db.Where("username = ?", seedUsername).First(&user).Error
	if err == nil {
		logger.Info("User already exists", "username", seedUsername)
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := utils.HashPassword(seedPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash seed password: %w", err)
	}

	user = models.User{
		Username:     seedUsername,
		Email:        seedEmail,
		PasswordHash: hash,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create seed user: %w", err)
	}

	logger.Info("Created user", "username", seedUsername)
	return &user, nil
}
