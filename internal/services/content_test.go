package services

import (
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/aayushivora31/techblog/internal/forms"
	"github.com/aayushivora31/techblog/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupContentTest(t *testing.T) (*gorm.DB, *AuditService) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	db.AutoMigrate(&models.User{}, &models.Tutorial{}, &models.Article{}, &models.Snippet{}, &models.AuditLog{})

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	return db, NewAuditService(db, logger)
}

func TestTutorialService_ListAndSearch(t *testing.T) {
	db, audit := setupContentTest(t)
	svc := NewTutorialService(db, audit)

	user := models.User{Username: "author", PasswordHash: "x"}
	db.Create(&user)

	// 13 tutorials with staggered timestamps, newest last created
	for i := 1; i <= 13; i++ {
		db.Create(&models.Tutorial{
			Title:       fmt.Sprintf("Tutorial %02d", i),
			Description: "general description",
			Content:     "content",
			AuthorID:    user.ID,
			CreatedAt:   time.Now().Add(time.Duration(i) * time.Minute),
		})
	}
	db.Create(&models.Tutorial{
		Title:       "Go Generics",
		Description: "type parameters explained",
		Content:     "content",
		AuthorID:    user.ID,
		CreatedAt:   time.Now().Add(time.Hour),
	})

	t.Run("First Page Newest First", func(t *testing.T) {
		tutorials, p, err := svc.List("", 1)
		assert.NoError(t, err)
		assert.Len(t, tutorials, TutorialsPerPage)
		assert.Equal(t, "Go Generics", tutorials[0].Title)
		assert.Equal(t, int64(14), p.TotalItems)
		assert.Equal(t, 3, p.TotalPages)
	})

	t.Run("Out Of Range Page Clamps", func(t *testing.T) {
		tutorials, p, err := svc.List("", 99)
		assert.NoError(t, err)
		assert.Equal(t, 3, p.Page)
		assert.Len(t, tutorials, 2)
	})

	t.Run("Search Title Case Insensitive", func(t *testing.T) {
		tutorials, _, err := svc.List("go generics", 1)
		assert.NoError(t, err)
		assert.Len(t, tutorials, 1)
		assert.Equal(t, "Go Generics", tutorials[0].Title)
	})

	t.Run("Search Description", func(t *testing.T) {
		tutorials, _, err := svc.List("TYPE PARAMETERS", 1)
		assert.NoError(t, err)
		assert.Len(t, tutorials, 1)
	})

	t.Run("No Match Is Valid Empty Page", func(t *testing.T) {
		tutorials, p, err := svc.List("NOPE", 1)
		assert.NoError(t, err)
		assert.Empty(t, tutorials)
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 1, p.TotalPages)
	})
}

func TestTutorialService_OwnershipCRUD(t *testing.T) {
	db, audit := setupContentTest(t)
	svc := NewTutorialService(db, audit)

	alice := models.User{Username: "alice", PasswordHash: "x"}
	bob := models.User{Username: "bob", PasswordHash: "x"}
	db.Create(&alice)
	db.Create(&bob)

	created, err := svc.Create(forms.TutorialInput{
		Title: "Owned", Description: "d", Content: "c",
	}, "", alice.ID, "127.0.0.1")
	assert.NoError(t, err)
	assert.Equal(t, alice.ID, created.AuthorID)

	t.Run("Owner Can Load", func(t *testing.T) {
		got, err := svc.GetForAuthor(created.ID, alice.ID)
		assert.NoError(t, err)
		assert.Equal(t, "Owned", got.Title)
	})

	t.Run("Non-Owner Sees Not Found", func(t *testing.T) {
		_, err := svc.GetForAuthor(created.ID, bob.ID)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("Non-Owner Update Fails Like Missing", func(t *testing.T) {
		_, err := svc.Update(created.ID, bob.ID, forms.TutorialInput{Title: "H", Description: "d", Content: "c"}, "", "127.0.0.1")
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

		_, missErr := svc.Update(99999, bob.ID, forms.TutorialInput{Title: "H", Description: "d", Content: "c"}, "", "127.0.0.1")
		assert.Equal(t, err, missErr)
	})

	t.Run("Owner Update Persists", func(t *testing.T) {
		updated, err := svc.Update(created.ID, alice.ID, forms.TutorialInput{
			Title: "Renamed", Description: "d2", Content: "c2",
		}, "new.jpg", "127.0.0.1")
		assert.NoError(t, err)
		assert.Equal(t, "Renamed", updated.Title)
		assert.Equal(t, "new.jpg", updated.Image)
	})

	t.Run("Update Keeps Image When Empty", func(t *testing.T) {
		updated, err := svc.Update(created.ID, alice.ID, forms.TutorialInput{
			Title: "Renamed", Description: "d2", Content: "c2",
		}, "", "127.0.0.1")
		assert.NoError(t, err)
		assert.Equal(t, "new.jpg", updated.Image)
	})

	t.Run("Non-Owner Delete Fails", func(t *testing.T) {
		err := svc.Delete(created.ID, bob.ID, "127.0.0.1")
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("Owner Delete Removes From Listings", func(t *testing.T) {
		assert.NoError(t, svc.Delete(created.ID, alice.ID, "127.0.0.1"))

		tutorials, _, err := svc.List("", 1)
		assert.NoError(t, err)
		assert.Empty(t, tutorials)

		owned, err := svc.ListByAuthor(alice.ID)
		assert.NoError(t, err)
		assert.Empty(t, owned)
	})
}

func TestArticleService(t *testing.T) {
	db, audit := setupContentTest(t)
	svc := NewArticleService(db, audit)

	user := models.User{Username: "author", PasswordHash: "x"}
	db.Create(&user)

	a, err := svc.Create(forms.ArticleInput{Title: "REST APIs", Content: "backbone of the web", Tags: "api,web"}, user.ID, "127.0.0.1")
	assert.NoError(t, err)

	t.Run("Search Matches Tags", func(t *testing.T) {
		articles, _, err := svc.List("api", 1)
		assert.NoError(t, err)
		assert.Len(t, articles, 1)
	})

	t.Run("Search Matches Content", func(t *testing.T) {
		articles, _, err := svc.List("BACKBONE", 1)
		assert.NoError(t, err)
		assert.Len(t, articles, 1)
	})

	t.Run("Update And Delete", func(t *testing.T) {
		updated, err := svc.Update(a.ID, user.ID, forms.ArticleInput{Title: "REST", Content: "c", Tags: ""}, "127.0.0.1")
		assert.NoError(t, err)
		assert.Equal(t, "REST", updated.Title)

		assert.NoError(t, svc.Delete(a.ID, user.ID, "127.0.0.1"))
		_, err = svc.Get(a.ID)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestSnippetService(t *testing.T) {
	db, audit := setupContentTest(t)
	svc := NewSnippetService(db, audit)

	user := models.User{Username: "author", PasswordHash: "x"}
	db.Create(&user)

	_, err := svc.Create(forms.SnippetInput{Title: "Hello", Code: "print(1)", Language: "python"}, user.ID, "127.0.0.1")
	assert.NoError(t, err)
	_, err = svc.Create(forms.SnippetInput{Title: "Flex", Code: ".c{display:flex}", Language: "css"}, user.ID, "127.0.0.1")
	assert.NoError(t, err)

	t.Run("Language Filter", func(t *testing.T) {
		snippets, p, err := svc.List("python", 1)
		assert.NoError(t, err)
		assert.Len(t, snippets, 1)
		assert.Equal(t, "Hello", snippets[0].Title)
		assert.Equal(t, int64(1), p.TotalItems)
	})

	t.Run("No Filter Lists All", func(t *testing.T) {
		snippets, _, err := svc.List("", 1)
		assert.NoError(t, err)
		assert.Len(t, snippets, 2)
	})

	t.Run("Unknown Language Empty Page", func(t *testing.T) {
		snippets, p, err := svc.List("rust", 1)
		assert.NoError(t, err)
		assert.Empty(t, snippets)
		assert.Equal(t, 1, p.Page)
	})
}
