package handlers

import (
	"net/http"

	"profil_backend/internal/models"
	"profil_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// ============================================
// CHAT HANDLER
// ============================================

type ChatHandler struct {
	*BaseHandler
	chatService services.ChatService
}

func NewChatHandler(base *BaseHandler, chatService services.ChatService) *ChatHandler {
	return &ChatHandler{
		BaseHandler: base,
		chatService: chatService,
	}
}

func (h *ChatHandler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/chat", h.List)
	api.POST("/chat", h.Post)
}

// List godoc
// @Summary  Posledné správy verejného chatu
// @Tags     chat
// @Produce  json
// @Param    limit query int false "Maximálny počet správ" default(30)
// @Success  200 {array} models.ChatMessage
// @Router   /api/chat [get]
func (h *ChatHandler) List(c *gin.Context) {
	limit := h.QueryInt(c, "limit", services.DefaultChatLimit)

	messages, err := h.chatService.List(c.Request.Context(), limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}

// Post godoc
// @Summary  Pridanie správy do verejného chatu
// @Tags     chat
// @Accept   json
// @Produce  json
// @Param    message body models.ChatMessage true "Správa"
// @Success  200 {object} map[string]string
// @Failure  400 {object} apperrors.ErrorResponse
// @Router   /api/chat [post]
func (h *ChatHandler) Post(c *gin.Context) {
	var msg models.ChatMessage
	if !h.BindAndValidate_JSON(c, &msg) {
		return
	}

	id, err := h.chatService.Post(c.Request.Context(), &msg)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, createResponse{Status: "ok", ID: id})
}
