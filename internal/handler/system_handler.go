package handler

import (
	"net/http"

	"travlr/internal/models"
	"travlr/internal/service"

	"github.com/gin-gonic/gin"
)

// SystemHandler handles health reporting.
type SystemHandler struct {
	service service.SystemServicer
}

// NewSystemHandler creates a new SystemHandler.
func NewSystemHandler(service service.SystemServicer) *SystemHandler {
	return &SystemHandler{service: service}
}

// Health godoc
// @Summary      Health check
// @Description  Report process uptime, memory usage and database connectivity
// @Tags         system
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.HealthResponse
// @Failure      401  {object}  response.ErrorResponse
// @Failure      403  {object}  response.ErrorResponse
// @Failure      503  {object}  models.HealthResponse
// @Router       /api/system/health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	result := h.service.Health(c.Request.Context())

	status := http.StatusOK
	if result.Status != models.StatusHealthy {
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, result)
}
