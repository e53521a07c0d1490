package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cash-track/models"
)

type postRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

func (h *Handler) ListPosts(c *gin.Context) {
	c.JSON(http.StatusOK, h.records.Posts(c.Request.Context()))
}

func (h *Handler) AddPost(c *gin.Context) {
	const required = "title and content are required"
	var req postRequest
	if !bind(c, &req, requires(required)) {
		return
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		badRequest(c, required)
		return
	}

	p, err := h.records.AddPost(c.Request.Context(), models.NewPost{Title: req.Title, Content: req.Content})
	if err != nil {
		fail(c, err, "post not found")
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *Handler) DeletePost(c *gin.Context) {
	removed, err := h.records.DeletePost(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err, "post not found")
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
