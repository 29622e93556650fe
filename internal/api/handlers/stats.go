// internal/api/handlers/stats.go
package handlers

import (
	"net/http"

	"github.com/codescope-coders/codescope-rework/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StatsHandler holds dependencies for the dashboard counters.
type StatsHandler struct {
	service services.StatsService
	logger  *zap.Logger
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(service services.StatsService, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{service: service, logger: logger}
}

// GetStats godoc
// @Summary      Dashboard statistics
// @Description  Application and job counters, cached briefly.
// @Tags         stats
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Failure      401 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /stats [get]
// @Security     BearerAuth
func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.service.GetStats(c.Request.Context())
	if err != nil {
		h.logger.Error("fetching stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch stats."})
		return
	}
	c.JSON(http.StatusOK, respond("Stats fetched successfully.", stats))
}
