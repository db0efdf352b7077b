package routes

import (
	"profil_backend/internal/config"
	"profil_backend/internal/handlers"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "profil_backend/docs"
)

// ============================================
// РЕГИСТРАЦИЯ МАРШРУТОВ
// ============================================

// SetupRoutes регистрирует все маршруты приложения.
func SetupRoutes(ginRouter *gin.Engine, cfg *config.Config, h *handlers.AppHandlers) {
	// Liveness и диагностика живут в корне, без префикса /api
	h.HealthHandler.RegisterRoutes(ginRouter)

	// Загруженные видео раздаются как статика
	ginRouter.Static("/uploads", cfg.Storage.BasePath)

	// Swagger UI
	ginRouter.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := ginRouter.Group("/api")
	{
		h.ReformHandler.RegisterRoutes(api)
		h.ContactHandler.RegisterRoutes(api)
		h.ChatHandler.RegisterRoutes(api)
		h.VideoHandler.RegisterRoutes(api)
	}
}
