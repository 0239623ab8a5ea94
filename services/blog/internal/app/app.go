package internal

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"makemodelyear/pkg/cache"
	"makemodelyear/pkg/config"
	"makemodelyear/pkg/database"
	"makemodelyear/pkg/jwt"
	"makemodelyear/pkg/logger"
	"makemodelyear/pkg/middleware"
	"makemodelyear/pkg/queue"
	"makemodelyear/pkg/s3"
	blogHTTP "makemodelyear/services/blog/internal/controller/http"
	"makemodelyear/services/blog/internal/repo"
	"makemodelyear/services/blog/internal/repo/fallback"
	"makemodelyear/services/blog/internal/repo/local"
	"makemodelyear/services/blog/internal/repo/persistent"
	"makemodelyear/services/blog/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "makemodelyear/services/blog/docs" // Swagger docs
)

type App struct {
	cfg          *config.Config
	log          *logger.Logger
	db           *gorm.DB
	redisClient  *redis.Client
	sqliteStore  *local.SQLiteBackend
	localBackend local.Backend
	s3Client     *s3.Client
	jwtService   *jwt.Service
	queueClient  *queue.Client
	blogUseCase  usecase.BlogUseCase
	httpServer   *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		// Content reads and writes fall back to the local store
		log.Error("Failed to connect to database: %v (serving from local store)", err)
		db = nil
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v", err)
		redisClient = nil
	}

	app := &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		jwtService:  jwt.NewService(cfg.AuthJWTSecret),
	}

	switch cfg.LocalStoreDriver {
	case "redis":
		if redisClient == nil {
			return nil, fmt.Errorf("local store driver redis requires a reachable redis")
		}
		app.localBackend = local.NewRedisBackend(redisClient)
	default:
		sqliteStore, err := local.NewSQLiteBackend(cfg.LocalStorePath)
		if err != nil {
			log.Error("Failed to open local store: %v", err)
			return nil, err
		}
		app.sqliteStore = sqliteStore
		app.localBackend = sqliteStore
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v (uploads will be inline)", err)
		s3Client = nil
	}
	app.s3Client = s3Client

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v (continuing without queue)", err)
		queueClient = nil
	}
	app.queueClient = queueClient

	return app, nil
}

func (a *App) Run() error {
	// Initialize repositories
	var (
		remotePosts   repo.PostStore
		remoteAuthors repo.AuthorStore
		settingStore  repo.SettingStore
		userStore     repo.UserStore
	)
	if a.db != nil {
		remotePosts = persistent.NewPostRepository(a.db)
		remoteAuthors = persistent.NewAuthorRepository(a.db)
		settingStore = persistent.NewSettingRepository(a.db)
		userStore = persistent.NewUserRepository(a.db)
	}

	postStore := fallback.NewPostStore(remotePosts, local.NewPostStore(a.localBackend), a.cfg.RemoteTimeout, a.log)
	authorStore := fallback.NewAuthorStore(remoteAuthors, local.NewAuthorStore(a.localBackend), a.cfg.RemoteTimeout, a.log)

	var storage usecase.ObjectStorage
	if a.s3Client != nil {
		storage = a.s3Client
	}
	var publisher usecase.Publisher
	if a.queueClient != nil {
		publisher = a.queueClient
	}

	// Initialize use cases
	settingsUseCase := usecase.NewSettingsUseCase(settingStore, a.log)
	userUseCase := usecase.NewUserUseCase(userStore)
	a.blogUseCase = usecase.NewBlogUseCase(postStore, settingsUseCase, a.cfg.SiteURL, a.log)
	authorUseCase := usecase.NewAuthorUseCase(authorStore, postStore, a.log)
	mediaUseCase := usecase.NewMediaUseCase(storage, a.log)
	contactUseCase := usecase.NewContactUseCase(publisher, a.log)

	// Initialize HTTP handlers
	blogHandler := blogHTTP.NewBlogHandler(a.blogUseCase, a.log)
	authorHandler := blogHTTP.NewAuthorHandler(authorUseCase, a.log)
	settingsHandler := blogHTTP.NewSettingsHandler(settingsUseCase, userUseCase, a.log)
	mediaHandler := blogHTTP.NewMediaHandler(mediaUseCase, a.log)
	contactHandler := blogHTTP.NewContactHandler(contactUseCase, a.log)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     a.cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/sitemap.xml", blogHandler.Sitemap)
	r.GET("/feed.xml", blogHandler.Feed)

	rateLimit := middleware.RateLimitMiddleware(a.redisClient, a.cfg.RateLimitPerMinute, time.Minute, a.log)
	requireAdmin := []gin.HandlerFunc{
		middleware.AuthMiddleware(a.jwtService),
		middleware.RequireRole(userUseCase.Role, "admin"),
	}

	site := r.Group("/api")
	{
		site.GET("/settings", rateLimit, settingsHandler.GetSettings)
		site.POST("/contact", rateLimit, contactHandler.SubmitContact)

		admin := site.Group("", requireAdmin...)
		{
			admin.GET("/admin/settings", settingsHandler.GetAdminSettings)
			admin.POST("/settings", settingsHandler.SaveSettings)
			admin.GET("/users", settingsHandler.ListUsers)
			admin.PATCH("/users", settingsHandler.UpdateUser)
		}
	}

	api := r.Group("/api/v1")
	{
		public := api.Group("", rateLimit)
		{
			public.GET("/posts", blogHandler.ListPosts)
			public.GET("/posts/tag/:tag", blogHandler.ListPostsByTag)
			public.GET("/posts/slug/:slug", blogHandler.GetPostBySlug)
			public.GET("/authors", authorHandler.ListActiveAuthors)
		}

		// Protected routes
		admin := api.Group("/admin", requireAdmin...)
		{
			admin.GET("/stats", blogHandler.DashboardStats)

			admin.GET("/posts", blogHandler.AdminListPosts)
			admin.POST("/posts", blogHandler.CreatePost)
			admin.GET("/posts/:id", blogHandler.AdminGetPost)
			admin.PUT("/posts/:id", blogHandler.UpdatePost)
			admin.DELETE("/posts/:id", blogHandler.DeletePost)

			admin.GET("/authors", authorHandler.ListAuthors)
			admin.POST("/authors", authorHandler.CreateAuthor)
			admin.PUT("/authors/:id", authorHandler.UpdateAuthor)
			admin.PATCH("/authors/:id/active", authorHandler.SetAuthorActive)
			admin.DELETE("/authors/:id", authorHandler.DeleteAuthor)

			admin.POST("/media", mediaHandler.UploadMedia)
			admin.DELETE("/media", mediaHandler.DeleteMedia)
		}
	}

	// Create HTTP server
	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		a.log.Info("Blog service starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down blog service...")
}

func (a *App) Shutdown() error {
	// The context is used to inform the server it has 5 seconds to finish
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var shutdownErr error
	if a.httpServer != nil {
		if err := a.httpServer.Shutdown(ctx); err != nil {
			a.log.Error("Server forced to shutdown: %v", err)
			shutdownErr = err
		}
	}

	// Pending view increments still need their stores
	if a.blogUseCase != nil {
		a.blogUseCase.Wait()
	}

	if a.sqliteStore != nil {
		if err := a.sqliteStore.Close(); err != nil {
			a.log.Error("Error closing local store: %v", err)
		}
	}

	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				a.log.Error("Error closing database: %v", err)
			}
		}
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	if a.queueClient != nil {
		if err := a.queueClient.Close(); err != nil {
			a.log.Error("Error closing RabbitMQ: %v", err)
		}
	}

	a.log.Info("Blog service exited")
	_ = a.log.Sync()
	return shutdownErr
}
