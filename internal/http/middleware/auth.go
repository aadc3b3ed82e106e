// README: Request identity middleware. User-scoped endpoints require the
// X-User-ID header; a real gateway in front terminates the actual auth.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"khusela/internal/types"
)

const userIDKey = "userID"

// RequireUser rejects requests without an X-User-ID header and stashes the
// identity in the request context for handlers.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := strings.TrimSpace(c.GetHeader("X-User-ID"))
		if uid == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "missing X-User-ID header",
			})
			return
		}
		c.Set(userIDKey, uid)
		c.Next()
	}
}

// UserID returns the authenticated user set by RequireUser.
func UserID(c *gin.Context) types.ID {
	return types.ID(c.GetString(userIDKey))
}
