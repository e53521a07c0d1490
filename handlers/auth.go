package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cash-track/middleware"
)

type loginInput struct {
	Token string `json:"token" binding:"required"`
}

// Login exchanges an identity provider token for the identity it
// carries. No session is created; clients keep sending the token.
func (h *Handler) Login(c *gin.Context) {
	var input loginInput
	if !bind(c, &input, requires("token is required")) {
		return
	}

	id, err := h.verifier.Verify(c.Request.Context(), input.Token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, id)
}

func (h *Handler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, middleware.CurrentIdentity(c))
}

// Profile describes the authenticated user. Provider details are not
// known to a token verifier, hence the fixed providers entry.
func (h *Handler) Profile(c *gin.Context) {
	id := middleware.CurrentIdentity(c)
	c.JSON(http.StatusOK, gin.H{
		"uid":                       id.UserID,
		"email":                     id.Email,
		"authenticated":             true,
		"providers":                 []string{"unknown"},
		"account_linking_available": false,
	})
}

// VerifyToken confirms the request's bearer token is valid.
func (h *Handler) VerifyToken(c *gin.Context) {
	id := middleware.CurrentIdentity(c)
	c.JSON(http.StatusOK, gin.H{"valid": true, "uid": id.UserID, "email": id.Email})
}
