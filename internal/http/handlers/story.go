package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/neharvard/interactive-storytelling-server/internal/http/response"
	"github.com/neharvard/interactive-storytelling-server/internal/services"
)

type StoryHandler struct {
	stories services.StoryService
}

func NewStoryHandler(stories services.StoryService) *StoryHandler {
	return &StoryHandler{stories: stories}
}

type storyPathRequest struct {
	PathTitle string   `json:"pathTitle" binding:"required"`
	Content   string   `json:"content"`
	Options   []string `json:"options"`
}

type createStoryRequest struct {
	Title       string             `json:"title" binding:"required"`
	Description string             `json:"description"`
	Paths       []storyPathRequest `json:"paths" binding:"required,min=1,dive"`
}

// POST /api/stories
func (h *StoryHandler) CreateStory(c *gin.Context) {
	var req createStoryRequest
	if !bindJSON(c, &req) {
		return
	}
	in := services.StoryInput{Title: req.Title, Description: req.Description}
	for _, p := range req.Paths {
		in.Paths = append(in.Paths, services.StoryPathInput{
			PathTitle: p.PathTitle,
			Content:   p.Content,
			Options:   p.Options,
		})
	}
	story, err := h.stories.Create(c.Request.Context(), in)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"story": story})
}

// GET /api/stories
func (h *StoryHandler) ListStories(c *gin.Context) {
	stories, err := h.stories.List(c.Request.Context())
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"stories": stories})
}

// GET /api/stories/:id
func (h *StoryHandler) GetStory(c *gin.Context) {
	story, err := h.stories.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"story": story})
}
