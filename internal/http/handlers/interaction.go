package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/neharvard/interactive-storytelling-server/internal/http/response"
	"github.com/neharvard/interactive-storytelling-server/internal/services"
)

type InteractionHandler struct {
	interactions services.InteractionService
}

func NewInteractionHandler(interactions services.InteractionService) *InteractionHandler {
	return &InteractionHandler{interactions: interactions}
}

// timeSpent stays untyped so "5 sec" or 12.5 reach the normalizer instead of
// failing the bind.
type recordInteractionRequest struct {
	StoryID   string  `json:"storyId" binding:"objectid"`
	PathTitle string  `json:"pathTitle"`
	TimeSpent any     `json:"timeSpent"`
	Title     *string `json:"title"`
}

// POST /api/interactions
func (h *InteractionHandler) RecordInteraction(c *gin.Context) {
	var req recordInteractionRequest
	if !bindJSON(c, &req) {
		return
	}
	ev, err := h.interactions.Record(c.Request.Context(), services.InteractionInput{
		StoryID:   req.StoryID,
		PathTitle: req.PathTitle,
		TimeSpent: req.TimeSpent,
		Title:     req.Title,
	})
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"ok": true, "id": ev.ID})
}

// GET /api/stories/:id/interactions
func (h *InteractionHandler) ListStoryInteractions(c *gin.Context) {
	out, err := h.interactions.ListByStory(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"interactions": out})
}
