package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/aayushivora31/techblog/internal/config"
	"github.com/aayushivora31/techblog/internal/handlers"
	"github.com/aayushivora31/techblog/internal/repository"
	"github.com/aayushivora31/techblog/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func Run(ctx context.Context) error {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// 2. Setup Logger
	var handler slog.Handler
	if cfg.AppEnv == "production" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	// 3. Initialize Database
	db, err := repository.InitDB(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	// 4. Initialize Redis (optional cache)
	rdb, err := repository.InitRedis(cfg.RedisURL, cfg.RedisPassword)
	if err != nil {
		logger.Warn("Failed to connect to Redis, detail cache disabled", "error", err)
		rdb = nil
	}

	// 5. Run Migrations
	if strings.HasPrefix(cfg.DatabaseURL, "postgres") {
		logger.Info("Running database migrations...")
		if err := repository.RunMigrations(cfg.DatabaseURL, ""); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	} else {
		if err := repository.AutoMigrate(db); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
	}

	// 6. Initialize Services
	auditService := services.NewAuditService(db, logger)
	tutorialService := services.NewTutorialService(db, auditService)
	articleService := services.NewArticleService(db, auditService)
	snippetService := services.NewSnippetService(db, auditService)
	mediaStore := services.NewMediaStore(cfg.MediaRoot, logger)
	rateLimiter := services.NewIPRateLimiter(5, 10, logger)

	// 7. Initialize Handler
	h := handlers.NewHandler(cfg, logger, db, rdb, tutorialService, articleService, snippetService, auditService, mediaStore)

	// 8. Setup Router
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := h.SetupRouter(rateLimiter, "web/templates/*", "./web/static")

	// 9. Start Server with Graceful Shutdown
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()

	go auditService.Start(workerCtx)
	rateLimiter.StartCleanup(10 * time.Minute)

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Starting server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		logger.Info("Shutting down server...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	workerCancel()
	// Let the audit worker drain
	time.Sleep(100 * time.Millisecond)

	logger.Info("Server exiting")
	return nil
}
