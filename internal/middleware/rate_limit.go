package middleware

import (
	"strconv"

	"life-go/internal/utils"
	"life-go/pkg/redis_limiter"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RateLimit throttles each client IP with a fixed-window counter.
// A nil limiter disables throttling; limiter errors let the request through.
func RateLimit(limiter *redis_limiter.RedisLimiter, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		allowed, remaining, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			logger.WithError(err).WithField("ip", c.ClientIP()).Warn("rate limiter unavailable")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limiter.GetMaxRequests()))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		if !allowed {
			utils.TooManyRequests(c, "Request was throttled.")
			c.Abort()
			return
		}

		c.Next()
	}
}
