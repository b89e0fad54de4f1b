package auth

import (
	"github.com/gin-gonic/gin"
	"github.com/pbxops/server/internal/errors"
)

// RequireAuth rejects requests without a valid session token before they
// reach any handler. Claims are placed in the gin context on success.
func RequireAuth(tm *TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := tm.FromAuthHeader(c.GetHeader("Authorization"))
		if !ok {
			errors.Unauthorized(c, "")
			c.Abort()
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

// OptionalAuth populates claims when a valid token is present but lets the
// request through either way.
func OptionalAuth(tm *TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := tm.FromAuthHeader(c.GetHeader("Authorization")); ok {
			setClaims(c, claims)
		}

		c.Next()
	}
}

// extracts user_id from context after RequireAuth
func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		return "", false
	}

	return userID.(string), true
}

func setClaims(c *gin.Context, claims *Claims) {
	c.Set("user_id", claims.UserID)
	c.Set("username", claims.Username)
	c.Set("user_email", claims.Email)
}
