package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LoggingMiddleware tags every request with a request ID and logs the
// method, path, status and latency on completion.
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-Id")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("requestId", requestID)
		c.Writer.Header().Set("X-Request-Id", requestID)

		start := time.Now()
		c.Next()

		log.Printf("[%s] %s %s -> %d (%s)",
			requestID, c.Request.Method, c.Request.URL.Path,
			c.Writer.Status(), time.Since(start))
	}
}
