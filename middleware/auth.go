package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cash-track/auth"
)

// Context keys set by Auth.
const (
	userIDKey = "user_id"
	emailKey  = "email"
)

// Auth verifies the bearer token of the request and stores the resolved
// identity in the gin context.
func Auth(v auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			unauthorized(c, auth.ErrMissingToken.Error())
			return
		}

		id, err := v.Verify(c.Request.Context(), token)
		if err != nil {
			unauthorized(c, err.Error())
			return
		}

		c.Set(userIDKey, id.UserID)
		c.Set(emailKey, id.Email)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func unauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":   "Authentication required",
		"message": msg,
	})
}

// UserID returns the authenticated user id, or "" outside Auth.
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

// CurrentIdentity returns the identity stored by Auth.
func CurrentIdentity(c *gin.Context) auth.Identity {
	return auth.Identity{UserID: c.GetString(userIDKey), Email: c.GetString(emailKey)}
}
