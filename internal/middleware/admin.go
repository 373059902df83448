package middleware

import (
	"life-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// AdminMiddleware rejects authenticated callers without the admin claim
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAdmin(c) {
			utils.Forbidden(c, "Admin privileges required.")
			c.Abort()
			return
		}
		c.Next()
	}
}
