package handlers

import (
	"net/http"

	"profil_backend/internal/models"
	"profil_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// ============================================
// CONTACT HANDLER
// ============================================

type ContactHandler struct {
	*BaseHandler
	contactService services.ContactService
}

func NewContactHandler(base *BaseHandler, contactService services.ContactService) *ContactHandler {
	return &ContactHandler{
		BaseHandler:    base,
		contactService: contactService,
	}
}

func (h *ContactHandler) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/contact", h.Submit)
}

// Submit godoc
// @Summary  Odoslanie správy z kontaktného formulára
// @Tags     contact
// @Accept   json
// @Produce  json
// @Param    message body models.ContactMessage true "Správa"
// @Success  200 {object} map[string]string
// @Failure  400 {object} apperrors.ErrorResponse
// @Router   /api/contact [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var msg models.ContactMessage
	if !h.BindAndValidate_JSON(c, &msg) {
		return
	}

	id, err := h.contactService.Submit(c.Request.Context(), &msg)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, createResponse{Status: "ok", ID: id})
}
