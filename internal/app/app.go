package app

import (
	"fmt"
	"time"

	"atlasweb_backend/database"
	"atlasweb_backend/internal/cache"
	"atlasweb_backend/internal/config"
	"atlasweb_backend/internal/email"
	"atlasweb_backend/internal/handlers"
	"atlasweb_backend/internal/imageprocessor"
	"atlasweb_backend/internal/logger"
	"atlasweb_backend/internal/middleware"
	"atlasweb_backend/internal/repositories"
	"atlasweb_backend/internal/routes"
	"atlasweb_backend/internal/services"
	"atlasweb_backend/internal/storage"
	"atlasweb_backend/internal/validator"
	"atlasweb_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)
	apperrors.SetDebug(cfg.Server.Env != "production")

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the fully wired gin engine. Tests call it directly
// against a transactional database handle.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:       cfg.Storage.Type,
		BasePath:   cfg.Storage.BasePath,
		BaseURL:    cfg.Storage.BaseURL,
		Bucket:     cfg.Storage.Bucket,
		Region:     cfg.Storage.Region,
		AccessKey:  cfg.Storage.AccessKey,
		SecretKey:  cfg.Storage.SecretKey,
		Endpoint:   cfg.Storage.Endpoint,
		UseSSL:     cfg.Storage.UseSSL,
		PublicRead: cfg.Storage.PublicRead,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	pageCache := cache.New(256, time.Duration(cfg.Cache.TTL)*time.Second)

	serviceContainer := initializeServices(cfg, storageInstance)

	if err := serviceContainer.AuthService.SeedFirstAdmin(gormDB, cfg.FirstAdminEmail, cfg.FirstAdminPassword); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	appHandlers := initializeHandlers(cfg, serviceContainer, storageInstance, pageCache)

	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, storageInstance storage.Storage) *services.ServiceContainer {
	var emailProvider email.Provider
	if cfg.Email.SMTPHost != "" && cfg.Email.SMTPUsername != "" {
		smtpConfig := email.DefaultConfig()
		smtpConfig.Host = cfg.Email.SMTPHost
		smtpConfig.Port = cfg.Email.SMTPPort
		smtpConfig.Username = cfg.Email.SMTPUsername
		smtpConfig.Password = cfg.Email.SMTPPassword
		smtpConfig.FromEmail = cfg.Email.FromEmail
		smtpConfig.FromName = cfg.Email.FromName
		smtpConfig.UseTLS = cfg.Email.UseTLS

		provider := email.NewSMTPProvider(smtpConfig, email.NewTemplateManager())
		if err := provider.Validate(); err != nil {
			logger.Warn("Email provider misconfigured, notifications disabled", "error", err)
		} else {
			emailProvider = provider
		}
	} else {
		logger.Warn("SMTP not configured, contact notifications disabled")
	}

	userRepo := repositories.NewUserRepository()
	contactRepo := repositories.NewContactRepository()
	mediaRepo := repositories.NewMediaRepository()

	processor := imageprocessor.NewProcessor(cfg.Upload.ImageQuality)

	uploadService := services.NewUploadService(mediaRepo, storageInstance, processor, services.UploadConfig{
		MaxSize:      cfg.Upload.MaxSize,
		MaxFiles:     cfg.Upload.MaxFiles,
		AllowedTypes: cfg.Upload.AllowedTypes,
		SignTTL:      time.Duration(cfg.Upload.SignTTL) * time.Second,
		Provider:     cfg.Storage.Type,
	})
	contactService := services.NewContactService(contactRepo, emailProvider, cfg.Email.NotifyEmail)
	authService := services.NewAuthService(userRepo)

	return &services.ServiceContainer{
		AuthService:    authService,
		ContactService: contactService,
		UploadService:  uploadService,
		EmailProvider:  emailProvider,
		Storage:        storageInstance,
	}
}

func initializeHandlers(cfg *config.Config, container *services.ServiceContainer, storageInstance storage.Storage, pageCache *cache.PageCache) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator, pageCache)

	return &handlers.AppHandlers{
		AuthHandler:    handlers.NewAuthHandler(baseHandler, container.AuthService, repositories.NewUserRepository()),
		ServiceHandler: handlers.NewServiceHandler(baseHandler, repositories.NewServiceRepository()),
		ProjectHandler: handlers.NewProjectHandler(baseHandler, repositories.NewProjectRepository()),
		PostHandler:    handlers.NewPostHandler(baseHandler, repositories.NewPostRepository()),
		TeamHandler:    handlers.NewTeamHandler(baseHandler, repositories.NewTeamRepository()),
		JobHandler:     handlers.NewJobHandler(baseHandler, repositories.NewJobRepository()),
		ContactHandler: handlers.NewContactHandler(baseHandler, container.ContactService, repositories.NewContactRepository()),
		UploadHandler:  handlers.NewUploadHandler(baseHandler, container.UploadService, repositories.NewMediaRepository()),
		FileHandler:    handlers.NewFileHandler(baseHandler, storageInstance),
		CacheHandler:   handlers.NewCacheHandler(baseHandler, pageCache, cfg.Cache.Secret),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}
