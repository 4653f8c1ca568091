package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLogger writes one structured access log entry per request.
// It must run after RequestIDMiddleware so the request id is available.
func RequestLogger(log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		fields := []interface{}{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
			"request_id", c.GetString(RequestIDKey),
		}
		if status >= 500 {
			log.Warnw("Request handled", fields...)
			return
		}
		log.Infow("Request handled", fields...)
	}
}
