package handlers

import (
	"fmt"
	"net/http"

	"profil_backend/internal/config"
	"profil_backend/internal/docstore"

	"github.com/gin-gonic/gin"
)

// ============================================
// HEALTH HANDLER
// ============================================

// HealthHandler обслуживает liveness (/) и диагностику БД (/test).
type HealthHandler struct {
	cfg   *config.Config
	store docstore.Store
}

func NewHealthHandler(cfg *config.Config, store docstore.Store) *HealthHandler {
	return &HealthHandler{
		cfg:   cfg,
		store: store,
	}
}

func (h *HealthHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/", h.Root)
	router.GET("/test", h.Test)
}

// Root godoc
// @Summary  Liveness
// @Tags     health
// @Produce  json
// @Success  200 {object} map[string]string
// @Router   / [get]
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "API beží",
		"name":    "Ivan Noskovič",
	})
}

// Test godoc
// @Summary  Diagnostika pripojenia k databáze
// @Tags     health
// @Produce  json
// @Success  200 {object} map[string]interface{}
// @Router   /test [get]
//
// Test всегда отвечает 200: сбои диагностики складываются в тело
// ответа и никогда не превращаются в ошибку.
func (h *HealthHandler) Test(c *gin.Context) {
	ctx := c.Request.Context()

	response := gin.H{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      "❌ Not Set",
		"database_name":     "❌ Not Set",
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if h.cfg.Database.DSN != "" {
		response["database_url"] = "✅ Set"
	}
	if h.cfg.Database.Name != "" {
		response["database_name"] = "✅ Set"
	}

	switch {
	case h.store == nil:
		// Нечего диагностировать
	case h.store.Name() == "memory":
		response["database"] = "⚠️  Available but not initialized"
	default:
		response["database"] = "✅ Available"
		if err := h.store.Ping(ctx); err != nil {
			response["database"] = fmt.Sprintf("❌ Error: %s", truncate(err.Error(), 50))
			break
		}
		response["connection_status"] = "Connected"

		collections, err := h.store.Collections(ctx)
		if err != nil {
			response["database"] = fmt.Sprintf("⚠️  Connected but Error: %s", truncate(err.Error(), 50))
			break
		}
		if len(collections) > 10 {
			collections = collections[:10]
		}
		response["collections"] = collections
		response["database"] = "✅ Connected & Working"
	}

	c.JSON(http.StatusOK, response)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
