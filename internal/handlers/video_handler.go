package handlers

import (
	"net/http"

	"profil_backend/internal/models"
	"profil_backend/internal/services"
	"profil_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// ============================================
// VIDEO HANDLER
// ============================================

type VideoHandler struct {
	*BaseHandler
	videoService  services.VideoService
	maxUploadSize int64
}

func NewVideoHandler(base *BaseHandler, videoService services.VideoService, maxUploadSize int64) *VideoHandler {
	return &VideoHandler{
		BaseHandler:   base,
		videoService:  videoService,
		maxUploadSize: maxUploadSize,
	}
}

func (h *VideoHandler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/videos", h.List)
	api.POST("/videos", h.Create)
	api.POST("/videos/upload", h.Upload)
}

// uploadVideoForm - поля multipart-формы загрузки видео
type uploadVideoForm struct {
	Title       string `form:"title" json:"title" validate:"required,min=2,max=140"`
	Description string `form:"description" json:"description" validate:"omitempty,max=500"`
}

// uploadResponse - ответ на загрузку видео файлом
type uploadResponse struct {
	Status string            `json:"status"`
	ID     string            `json:"id"`
	Item   *models.VideoItem `json:"item"`
}

// List godoc
// @Summary  Zoznam videí v galérii
// @Tags     videos
// @Produce  json
// @Param    limit query int false "Maximálny počet videí" default(50)
// @Success  200 {array} models.VideoItem
// @Router   /api/videos [get]
func (h *VideoHandler) List(c *gin.Context) {
	limit := h.QueryInt(c, "limit", services.DefaultVideoLimit)

	items, err := h.videoService.List(c.Request.Context(), limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// Create godoc
// @Summary  Pridanie videa s externým URL
// @Tags     videos
// @Accept   json
// @Produce  json
// @Param    item body models.VideoItem true "Video"
// @Success  200 {object} map[string]string
// @Failure  400 {object} apperrors.ErrorResponse
// @Router   /api/videos [post]
func (h *VideoHandler) Create(c *gin.Context) {
	var item models.VideoItem
	if !h.BindAndValidate_JSON(c, &item) {
		return
	}

	id, err := h.videoService.Create(c.Request.Context(), &item)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, createResponse{Status: "ok", ID: id})
}

// Upload godoc
// @Summary  Nahratie videa súborom (multipart/form-data)
// @Tags     videos
// @Accept   multipart/form-data
// @Produce  json
// @Param    title formData string true "Názov videa"
// @Param    description formData string false "Popis"
// @Param    file formData file true "Video súbor"
// @Success  200 {object} uploadResponse
// @Failure  400 {object} apperrors.ErrorResponse
// @Router   /api/videos/upload [post]
func (h *VideoHandler) Upload(c *gin.Context) {
	// Парсим multipart form c ограничением на размер
	if err := c.Request.ParseMultipartForm(h.maxUploadSize); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("failed to parse form: "+err.Error()))
		return
	}

	var form uploadVideoForm
	if !h.BindAndValidate_Form(c, &form) {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("no file provided"))
		return
	}

	id, item, err := h.videoService.Upload(c.Request.Context(), &services.UploadVideoRequest{
		Title:       form.Title,
		Description: form.Description,
		File:        fileHeader,
	})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, uploadResponse{Status: "ok", ID: id, Item: item})
}
