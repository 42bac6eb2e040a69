package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"medbot/pkg/logger"
)

const RequestIDKey = "request_id"

// RequestLogger logs one line per request with a generated request id.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		c.Set(RequestIDKey, requestID)
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		status := c.Writer.Status()
		fields := []interface{}{
			"request_id", requestID,
			"client_ip", c.ClientIP(),
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"latency", time.Since(start).String(),
		}

		switch {
		case status >= 500:
			log.Error(fmt.Errorf("status %d", status), "server error", fields...)
		case status >= 400:
			log.Warn(nil, "client error", fields...)
		default:
			log.Info("request processed", fields...)
		}
	}
}
