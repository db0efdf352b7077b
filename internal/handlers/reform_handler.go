package handlers

import (
	"net/http"

	"profil_backend/internal/reforms"

	"github.com/gin-gonic/gin"
)

// ReformHandler отдает статические данные реформ.
type ReformHandler struct{}

func NewReformHandler() *ReformHandler {
	return &ReformHandler{}
}

func (h *ReformHandler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/sport-wages", h.GetSportWages)
	api.GET("/pension-reform", h.GetPensionReform)
}

// GetSportWages godoc
// @Summary  Tabuľka športových miezd
// @Tags     reforms
// @Produce  json
// @Success  200 {array} reforms.WageRow
// @Router   /api/sport-wages [get]
func (h *ReformHandler) GetSportWages(c *gin.Context) {
	c.JSON(http.StatusOK, reforms.SportWages())
}

// GetPensionReform godoc
// @Summary  Kroky dôchodkovej reformy
// @Tags     reforms
// @Produce  json
// @Success  200 {array} reforms.PensionStep
// @Router   /api/pension-reform [get]
func (h *ReformHandler) GetPensionReform(c *gin.Context) {
	c.JSON(http.StatusOK, reforms.PensionReform())
}
