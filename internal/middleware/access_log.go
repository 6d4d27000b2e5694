package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// AccessLog logs one structured line per request after it completes.
func (mw Middleware) AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		fields := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", time.Since(start).String(),
			"client_ip", c.ClientIP(),
		}
		switch {
		case status >= 500:
			mw.l.Error(ctx, append([]any{"http request"}, fields...)...)
		case status >= 400:
			mw.l.Warn(ctx, append([]any{"http request"}, fields...)...)
		default:
			mw.l.Debug(ctx, append([]any{"http request"}, fields...)...)
		}
	}
}
