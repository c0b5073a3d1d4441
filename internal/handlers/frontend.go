package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/aayushivora31/techblog/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const detailCacheTTL = 10 * time.Minute

// cacheGet loads a cached detail record into dest. A nil client, a miss,
// or a decode failure all report false so the caller falls through to the
// database.
func (h *Handler) cacheGet(key string, dest any) bool {
	if h.rdb == nil {
		return false
	}
	val, err := h.rdb.Get(context.Background(), key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(val), dest) == nil
}

func (h *Handler) cacheSet(key string, v any) {
	if h.rdb == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	h.rdb.Set(context.Background(), key, data, detailCacheTTL)
}

// cacheDel drops a cached detail record after a mutation so edits and
// deletes are visible before the TTL expires.
func (h *Handler) cacheDel(key string) {
	if h.rdb == nil {
		return
	}
	h.rdb.Del(context.Background(), key)
}

func (h *Handler) ShowHome(c *gin.Context) {
	session := sessions.Default(c)
	c.HTML(http.StatusOK, "home.html", gin.H{
		"User": session.Get("user_id"),
	})
}

func (h *Handler) ListTutorials(c *gin.Context) {
	query := c.Query("q")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	tutorials, pagination, err := h.tutorialService.List(query, page)
	if err != nil {
		h.logger.Error("Failed to list tutorials", "error", err)
		c.HTML(http.StatusInternalServerError, "tutorials.html", gin.H{"Error": "Something went wrong", "Query": query})
		return
	}

	c.HTML(http.StatusOK, "tutorials.html", gin.H{
		"Tutorials":  tutorials,
		"Query":      query,
		"Pagination": pagination,
		"MediaURL":   h.cfg.MediaURL,
	})
}

func (h *Handler) ShowTutorial(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.HTML(http.StatusNotFound, "404.html", gin.H{"error": "Tutorial not found"})
		return
	}

	var tutorial models.Tutorial
	cacheKey := "tutorial:" + c.Param("id")

	// Cache lookup, DB on miss
	if !h.cacheGet(cacheKey, &tutorial) {
		found, err := h.tutorialService.Get(uint(id))
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				h.logger.Error("Failed to load tutorial", "id", id, "error", err)
			}
			c.HTML(http.StatusNotFound, "404.html", gin.H{"error": "Tutorial not found"})
			return
		}
		tutorial = *found
		h.cacheSet(cacheKey, tutorial)
	}

	c.HTML(http.StatusOK, "tutorial_detail.html", gin.H{
		"Tutorial": tutorial,
		"MediaURL": h.cfg.MediaURL,
	})
}

func (h *Handler) ListArticles(c *gin.Context) {
	query := c.Query("q")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	articles, pagination, err := h.articleService.List(query, page)
	if err != nil {
		h.logger.Error("Failed to list articles", "error", err)
		c.HTML(http.StatusInternalServerError, "articles.html", gin.H{"Error": "Something went wrong", "Query": query})
		return
	}

	c.HTML(http.StatusOK, "articles.html", gin.H{
		"Articles":   articles,
		"Query":      query,
		"Pagination": pagination,
	})
}

func (h *Handler) ShowArticle(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.HTML(http.StatusNotFound, "404.html", gin.H{"error": "Article not found"})
		return
	}

	var article models.Article
	cacheKey := "article:" + c.Param("id")

	if !h.cacheGet(cacheKey, &article) {
		found, err := h.articleService.Get(uint(id))
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				h.logger.Error("Failed to load article", "id", id, "error", err)
			}
			c.HTML(http.StatusNotFound, "404.html", gin.H{"error": "Article not found"})
			return
		}
		article = *found
		h.cacheSet(cacheKey, article)
	}

	c.HTML(http.StatusOK, "article_detail.html", gin.H{
		"Article": article,
	})
}

func (h *Handler) ListSnippets(c *gin.Context) {
	language := c.Query("language")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	snippets, pagination, err := h.snippetService.List(language, page)
	if err != nil {
		h.logger.Error("Failed to list snippets", "error", err)
		c.HTML(http.StatusInternalServerError, "snippets.html", gin.H{
			"Error":     "Something went wrong",
			"Language":  language,
			"Languages": models.SnippetLanguages,
		})
		return
	}

	c.HTML(http.StatusOK, "snippets.html", gin.H{
		"Snippets":   snippets,
		"Language":   language,
		"Languages":  models.SnippetLanguages,
		"Pagination": pagination,
	})
}

func (h *Handler) ShowContact(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", gin.H{"Name": "", "Email": ""})
}

// HandleContactForm acknowledges the message, nothing is persisted.
func (h *Handler) HandleContactForm(c *gin.Context) {
	name := c.PostForm("name")
	email := c.PostForm("email")
	message := c.PostForm("message")

	if name == "" || email == "" || message == "" {
		c.HTML(http.StatusOK, "contact.html", gin.H{
			"Error": "All fields are required.",
			"Name":  name,
			"Email": email,
		})
		return
	}

	h.logger.Info("Contact message received", "name", name, "email", email)

	c.HTML(http.StatusOK, "contact.html", gin.H{
		"Message": "Thank you for your message! We will get back to you soon.",
		"Name":    "",
		"Email":   "",
	})
}
