package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/neharvard/interactive-storytelling-server/internal/http/response"
	"github.com/neharvard/interactive-storytelling-server/internal/services"
)

type AnalyticsHandler struct {
	analytics services.AnalyticsService
}

func NewAnalyticsHandler(analytics services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// GET /api/stories/:id/popularity
func (h *AnalyticsHandler) GetPopularity(c *gin.Context) {
	out, err := h.analytics.Popularity(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"popularity": out})
}

// GET /api/stories/:id/time-spent
func (h *AnalyticsHandler) GetTimeSpent(c *gin.Context) {
	out, err := h.analytics.TimeSpent(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"timeSpent": out})
}
