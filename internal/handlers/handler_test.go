package handlers

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/aayushivora31/techblog/internal/config"
	"github.com/aayushivora31/techblog/internal/models"
	"github.com/aayushivora31/techblog/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupTestHandler(t *testing.T) (*Handler, *gorm.DB) {
	t.Helper()
	db, _ := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	db.AutoMigrate(&models.User{}, &models.Tutorial{}, &models.Article{}, &models.Snippet{}, &models.AuditLog{})

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	cfg := config.Config{
		SessionSecret: "test-secret-12345678901234567890123456789012",
		MediaRoot:     t.TempDir(),
		MediaURL:      "/media",
	}

	audit := services.NewAuditService(db, logger)
	tutorials := services.NewTutorialService(db, audit)
	articles := services.NewArticleService(db, audit)
	snippets := services.NewSnippetService(db, audit)
	media := services.NewMediaStore(cfg.MediaRoot, logger)

	// No Redis in tests; the detail cache is nil-safe
	h := NewHandler(cfg, logger, db, nil, tutorials, articles, snippets, audit, media)
	return h, db
}

func setupTestRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return h.SetupRouter(nil, "../../web/templates/*", "../../web/static")
}

// signupUser registers a user through the real signup flow and returns
// the session cookie from the auto-login.
func signupUser(t *testing.T, r *gin.Engine, username, password string) string {
	t.Helper()

	form := url.Values{}
	form.Add("username", username)
	form.Add("email", username+"@example.com")
	form.Add("password", password)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/signup", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("signup failed with status %d: %s", w.Code, w.Body.String())
	}
	return w.Header().Get("Set-Cookie")
}
