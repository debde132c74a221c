package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"seungpyo.lee/SocialFeed/pkg/logger"
)

const requestIDKey = "request_id"

// RequestID returns the id assigned to the current request, or "-".
func RequestID(c *gin.Context) string {
	if id := c.GetString(requestIDKey); id != "" {
		return id
	}
	return "-"
}

// RequestLogger tags each request with a uuid and logs one line when it completes.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Set(requestIDKey, requestID)
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		line := "request %s >> %s | %s | %s | %d | %s"
		args := []any{requestID, c.ClientIP(), c.Request.Method, c.Request.URL.Path, status, time.Since(start)}
		if status >= 500 {
			log.Warnf(line, args...)
			return
		}
		log.Infof(line, args...)
	}
}
