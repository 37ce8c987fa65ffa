package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/peoplebook/peoplebook/internal/flash"
	"github.com/peoplebook/peoplebook/internal/handlers"
	"github.com/peoplebook/peoplebook/internal/middleware"
	"github.com/peoplebook/peoplebook/internal/repositories"
	"github.com/peoplebook/peoplebook/internal/services"
	"github.com/peoplebook/peoplebook/pkg/config"
	"github.com/peoplebook/peoplebook/pkg/database"
	"github.com/peoplebook/peoplebook/pkg/logger"
	"github.com/peoplebook/peoplebook/pkg/uploader"
	"github.com/peoplebook/peoplebook/pkg/validation"
)

func main() {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Load configuration
	if err := config.Load(); err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	validation.Init()

	// Initialize database
	if err := database.Init(cfg.Database.Path); err != nil {
		logger.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	// Flash/session backing store
	flashStore := newFlashStore(cfg)

	// Upload collaborator
	up := newUploader(cfg)

	// Initialize dependencies
	personRepo := repositories.NewPersonRepository(database.DB)
	personService := services.NewPersonService(personRepo)

	// Initialize router
	router := gin.Default()

	// Apply middleware
	router.Use(middleware.SessionMiddleware())

	// Setup static files
	router.Static("/static", "./web/static")

	// Setup routes
	setupRoutes(router, personService, flashStore, up)
	loadTemplates(router)

	// Setup server; the method override wrapper must sit outside the
	// router so PUT/DELETE forms are re-dispatched before route matching
	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: middleware.MethodOverride(router),
	}

	go func() {
		logger.Infof("Server starting on :%s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Server shutdown failed: %v", err)
	}

	logger.Info("Server stopped")
}

func setupRoutes(router *gin.Engine, personService *services.PersonService, flashStore flash.Store, up uploader.Uploader) {
	// Initialize handlers
	pagesHandler := handlers.NewPagesHandler(flashStore)
	personHandler := handlers.NewPersonHandler(personService, flashStore, up)
	exportHandler := handlers.NewExportHandler(personService, flashStore)
	notFoundHandler := handlers.NewNotFoundHandler(flashStore)

	router.GET("/", pagesHandler.Welcome)
	router.GET("/home", personHandler.Home)
	router.GET("/show/:id", personHandler.Show)
	router.GET("/create_user", personHandler.CreateForm)
	router.POST("/create_user", personHandler.Create)
	router.GET("/update_user/:id", personHandler.UpdateForm)
	router.PUT("/update_user/:id", personHandler.Update)
	router.DELETE("/delete_user/:id", personHandler.Delete)
	router.GET("/about", pagesHandler.About)
	router.GET("/export", exportHandler.Export)

	// Catch-all, registered last so it never shadows a real route
	router.NoRoute(notFoundHandler.NotFound)
}

func newFlashStore(cfg *config.Config) flash.Store {
	if cfg.Redis.Addr == "" {
		logger.Warnf("REDIS_ADDR not set, using in-memory flash store")
		return flash.NewMemoryStore()
	}

	ttl := time.Duration(cfg.Session.TTLDays) * 24 * time.Hour
	store := flash.NewRedisStore(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, ttl)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := store.Ping(ctx); err != nil {
		logger.Fatalf("Failed to connect to Redis: %v", err)
	}

	return store
}

func newUploader(cfg *config.Config) uploader.Uploader {
	if cfg.Uploads.GCSBucket != "" {
		up, err := uploader.NewGCSUploader(context.Background(), cfg.Uploads.GCSBucket, cfg.Uploads.GCSCredentials)
		if err != nil {
			logger.Fatalf("Failed to initialize GCS uploader: %v", err)
		}
		return up
	}

	logger.Warnf("GCS_BUCKET not set, storing uploads on local disk")
	up, err := uploader.NewLocalUploader(cfg.Uploads.LocalDir, cfg.Uploads.LocalURLPrefix)
	if err != nil {
		logger.Fatalf("Failed to initialize local uploader: %v", err)
	}
	return up
}

func loadTemplates(router *gin.Engine) {
	cwd, err := os.Getwd()
	if err != nil {
		logger.Fatalf("Couldn't get working directory: %v", err)
	}

	router.LoadHTMLFiles(
		filepath.Join(cwd, "web/templates/layouts/header.html"),
		filepath.Join(cwd, "web/templates/layouts/footer.html"),
		filepath.Join(cwd, "web/templates/home.html"),
		filepath.Join(cwd, "web/templates/show.html"),
		filepath.Join(cwd, "web/templates/create.html"),
		filepath.Join(cwd, "web/templates/update.html"),
		filepath.Join(cwd, "web/templates/about.html"),
		filepath.Join(cwd, "web/templates/universal.html"),
	)
}
