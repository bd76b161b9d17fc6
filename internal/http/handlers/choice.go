package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/neharvard/interactive-storytelling-server/internal/http/response"
	"github.com/neharvard/interactive-storytelling-server/internal/services"
)

type ChoiceHandler struct {
	choices services.ChoiceService
}

func NewChoiceHandler(choices services.ChoiceService) *ChoiceHandler {
	return &ChoiceHandler{choices: choices}
}

type recordChoiceRequest struct {
	StoryID   string  `json:"storyId" binding:"objectid"`
	PathTitle string  `json:"pathTitle"`
	Title     string  `json:"title"`
	UserID    *string `json:"userId"`
}

// POST /api/choices
func (h *ChoiceHandler) RecordChoice(c *gin.Context) {
	var req recordChoiceRequest
	if !bindJSON(c, &req) {
		return
	}
	err := h.choices.RecordChoice(c.Request.Context(), services.ChoiceInput{
		StoryID:   req.StoryID,
		PathTitle: req.PathTitle,
		Title:     req.Title,
		UserID:    req.UserID,
	})
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}
