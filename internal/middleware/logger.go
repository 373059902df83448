package middleware

import (
	"time"

	apperrors "life-go/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// LoggerMiddleware writes one structured entry per request
func LoggerMiddleware(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		status := c.Writer.Status()
		entry := logger.WithFields(logrus.Fields{
			"status":     status,
			"method":     c.Request.Method,
			"path":       path,
			"query":      query,
			"ip":         c.ClientIP(),
			"user_agent": c.Request.UserAgent(),
			"latency":    time.Since(start),
			"length":     c.Writer.Size(),
		})

		if id := GetRequestID(c); id != "" {
			entry = entry.WithField("request_id", id)
		}
		if username, ok := GetUsername(c); ok {
			entry = entry.WithField("username", username)
		}
		if last := c.Errors.Last(); last != nil {
			if appErr, ok := apperrors.As(last.Err); ok {
				entry = entry.WithFields(appErr.LogFields())
			} else {
				entry = entry.WithField("error", last.Error())
			}
		}

		switch {
		case status >= 500:
			entry.Error("HTTP Request")
		case status >= 400:
			entry.Warn("HTTP Request")
		default:
			entry.Info("HTTP Request")
		}
	}
}
