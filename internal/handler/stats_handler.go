package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edudesk/edudesk-api/internal/service"
	"github.com/edudesk/edudesk-api/pkg/response"
)

// StatsHandler exposes the dashboard aggregate endpoint.
type StatsHandler struct {
	stats *service.StatsService
}

// NewStatsHandler constructs StatsHandler.
func NewStatsHandler(stats *service.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// Dashboard godoc
// @Summary Dashboard entity counts
// @Tags Dashboard
// @Produce json
// @Success 200 {object} models.DashboardStats
// @Router /api/dashboard/stats [get]
func (h *StatsHandler) Dashboard(c *gin.Context) {
	stats, err := h.stats.Dashboard(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Document(c, http.StatusOK, stats)
}
