package handlers

import (
	"net/http"

	"github.com/aayushivora31/techblog/internal/models"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ShowDashboard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		// Stale session pointing at a removed user
		c.Redirect(http.StatusFound, "/logout")
		return
	}

	userTutorials, err := h.tutorialService.ListByAuthor(userID)
	if err != nil {
		h.logger.Error("Failed to load dashboard tutorials", "error", err)
	}
	userArticles, err := h.articleService.ListByAuthor(userID)
	if err != nil {
		h.logger.Error("Failed to load dashboard articles", "error", err)
	}
	userSnippets, err := h.snippetService.ListByAuthor(userID)
	if err != nil {
		h.logger.Error("Failed to load dashboard snippets", "error", err)
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"User":            user,
		"UserTutorials":   userTutorials,
		"UserArticles":    userArticles,
		"UserSnippets":    userSnippets,
		"TutorialCount":   len(userTutorials),
		"ArticleCount":    len(userArticles),
		"SnippetCount":    len(userSnippets),
		"RecentTutorials": firstTutorials(userTutorials, 5),
		"RecentArticles":  firstArticles(userArticles, 5),
		"RecentSnippets":  firstSnippets(userSnippets, 5),
	})
}

func firstTutorials(items []models.Tutorial, n int) []models.Tutorial {
	if len(items) < n {
		return items
	}
	return items[:n]
}

func firstArticles(items []models.Article, n int) []models.Article {
	if len(items) < n {
		return items
	}
	return items[:n]
}

func firstSnippets(items []models.Snippet, n int) []models.Snippet {
	if len(items) < n {
		return items
	}
	return items[:n]
}
