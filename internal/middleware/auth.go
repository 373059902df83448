package middleware

import (
	"strings"

	"life-go/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	contextUsername = "username"
	contextIsAdmin  = "is_admin"
)

// AuthMiddleware validates the bearer token and stores its claims on the context
func AuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.Unauthorized(c, "Authentication credentials were not provided.")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			utils.Unauthorized(c, "Invalid authorization header.")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateToken(parts[1])
		if err != nil {
			utils.Unauthorized(c, "Token is invalid or expired.")
			c.Abort()
			return
		}

		c.Set(contextUsername, claims.Username)
		c.Set(contextIsAdmin, claims.IsAdmin)

		c.Next()
	}
}

// GetUsername returns the authenticated username
func GetUsername(c *gin.Context) (string, bool) {
	username, exists := c.Get(contextUsername)
	if !exists {
		return "", false
	}
	s, ok := username.(string)
	return s, ok
}

// IsAdmin reports whether the token carried the admin claim
func IsAdmin(c *gin.Context) bool {
	isAdmin, exists := c.Get(contextIsAdmin)
	if !exists {
		return false
	}
	b, ok := isAdmin.(bool)
	return ok && b
}
