package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"campusguard/internal/shared/id"
	"campusguard/internal/shared/logger"
)

// RequestLogger logs each completed request with latency and caller
// identity when present. Requests without an X-Request-ID get one
// assigned so log lines can be correlated.
func RequestLogger(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = id.MustGenerate(id.DefaultLength)
			c.Request.Header.Set("X-Request-ID", requestID)
		}
		c.Header("X-Request-ID", requestID)

		c.Next()

		latency := time.Since(start)

		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", latency,
			"client_ip", c.ClientIP(),
			"body_size", c.Writer.Size(),
			"request_id", requestID,
		}

		if userID, exists := c.Get("user_id"); exists {
			args = append(args, "user_id", userID)
		}

		status := c.Writer.Status()
		switch {
		case status >= 500:
			log.Errorw("HTTP request completed with server error", args...)
		case status >= 400:
			log.Warnw("HTTP request completed with client error", args...)
		default:
			log.Debugw("HTTP request completed", args...)
		}
	}
}
