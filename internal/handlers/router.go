package handlers

import (
	"github.com/aayushivora31/techblog/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func (h *Handler) SetupRouter(rateLimiter *services.IPRateLimiter, templatePath string, staticPath string) *gin.Engine {
	r := gin.Default()

	if templatePath != "" {
		r.LoadHTMLGlob(templatePath)
	}
	if staticPath != "" {
		r.Static("/static", staticPath)
	}
	// Development-only media serving; production delegates this to the
	// hosting layer.
	if h.cfg.MediaURL != "" && h.cfg.MediaRoot != "" {
		r.Static(h.cfg.MediaURL, h.cfg.MediaRoot)
	}

	// Middleware
	if rateLimiter != nil {
		r.Use(h.RateLimitMiddleware(rateLimiter))
	}

	store := cookie.NewStore([]byte(h.cfg.SessionSecret))
	r.Use(sessions.Sessions("techblog_session", store))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})

	// Public Routes
	r.GET("/", h.ShowHome)
	r.GET("/tutorials", h.ListTutorials)
	r.GET("/tutorials/:id", h.ShowTutorial)
	r.GET("/articles", h.ListArticles)
	r.GET("/articles/:id", h.ShowArticle)
	r.GET("/snippets", h.ListSnippets)
	r.GET("/login", h.ShowLogin)
	r.POST("/login", h.HandleLoginForm)
	r.GET("/signup", h.ShowSignup)
	r.POST("/signup", h.HandleSignupForm)
	r.GET("/logout", h.LogoutUser)
	r.POST("/logout", h.LogoutUser)
	r.GET("/contact", h.ShowContact)
	r.POST("/contact", h.HandleContactForm)

	// Protected Routes
	authorized := r.Group("/dashboard")
	authorized.Use(h.AuthRequired())
	{
		authorized.GET("", h.ShowDashboard)
		authorized.GET("/add-tutorial", h.ShowAddTutorial)
		authorized.POST("/add-tutorial", h.HandleAddTutorial)
		authorized.GET("/edit-tutorial/:id", h.ShowEditTutorial)
		authorized.POST("/edit-tutorial/:id", h.HandleEditTutorial)
		authorized.GET("/delete-tutorial/:id", h.DeleteTutorial)
		authorized.POST("/delete-tutorial/:id", h.DeleteTutorial)
		authorized.GET("/add-article", h.ShowAddArticle)
		authorized.POST("/add-article", h.HandleAddArticle)
		authorized.GET("/edit-article/:id", h.ShowEditArticle)
		authorized.POST("/edit-article/:id", h.HandleEditArticle)
		authorized.GET("/delete-article/:id", h.DeleteArticle)
		authorized.POST("/delete-article/:id", h.DeleteArticle)
	}

	return r
}
