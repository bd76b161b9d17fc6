package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const Banner = "Story Telling Platform is Running"

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler { return &HealthHandler{} }

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// GET /
func (h *HealthHandler) Root(c *gin.Context) {
	c.String(http.StatusOK, Banner)
}
