package app

import (
	"fmt"

	"profil_backend/internal/config"
	"profil_backend/internal/docstore"
	"profil_backend/internal/email"
	"profil_backend/internal/handlers"
	"profil_backend/internal/logger"
	"profil_backend/internal/middleware"
	"profil_backend/internal/routes"
	"profil_backend/internal/services"
	"profil_backend/internal/storage"
	"profil_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	store := newStore(cfg)

	ginRouter := SetupRouter(cfg, store)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("🚀 Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// newStore подключает Postgres, если задан DATABASE_URL; иначе
// приложение работает на in-memory хранилище (данные живут до рестарта).
func newStore(cfg *config.Config) docstore.Store {
	if cfg.Database.DSN == "" {
		logger.Warn("DATABASE_URL not set, using in-memory store")
		return docstore.NewMemoryStore()
	}

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}

	store, err := docstore.NewGormStore(gormDB)
	if err != nil {
		logger.Fatal("Failed to initialize document store", "error", err)
	}
	logger.Info("Database connected")
	return store
}

// SetupRouter собирает полностью сконфигурированный *gin.Engine.
// Вынесено из Run, чтобы тесты могли поднять роутер на своем хранилище.
func SetupRouter(cfg *config.Config, store docstore.Store) *gin.Engine {
	storageInstance, err := storage.NewLocalStorage(storage.Config{
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "path", cfg.Storage.BasePath)

	// 1. Инициализируем сервисы
	var notifier email.Provider
	if cfg.Email.SMTPHost != "" && cfg.Email.NotifyTo != "" {
		notifier = email.NewSMTPProvider(&email.SMTPConfig{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			UseTLS:    cfg.Email.UseTLS,
		})
		logger.Info("Email notifications enabled", "to", cfg.Email.NotifyTo)
	} else {
		logger.Warn("Email notifications disabled (SMTP not configured)")
	}

	contactService := services.NewContactService(store, notifier, cfg.Email.NotifyTo)
	chatService := services.NewChatService(store)
	videoService := services.NewVideoService(store, storageInstance, cfg.Upload.AllowedExtensions)

	// 2. Инициализируем хэндлеры
	baseHandler := handlers.NewBaseHandler(validator.New())
	appHandlers := &handlers.AppHandlers{
		HealthHandler:  handlers.NewHealthHandler(cfg, store),
		ReformHandler:  handlers.NewReformHandler(),
		ContactHandler: handlers.NewContactHandler(baseHandler, contactService),
		ChatHandler:    handlers.NewChatHandler(baseHandler, chatService),
		VideoHandler:   handlers.NewVideoHandler(baseHandler, videoService, cfg.Upload.MaxSize),
	}

	// 3. Инициализируем Gin
	ginRouter := initializeGinRouter(cfg)

	// 4. Делегируем регистрацию маршрутов пакету 'routes'
	routes.SetupRoutes(ginRouter, cfg, appHandlers)

	return ginRouter
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())
	ginRouter.Use(middleware.CORSMiddleware())

	return ginRouter
}
