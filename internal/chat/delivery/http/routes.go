package http

import (
	"github.com/gin-gonic/gin"

	"code-assistant/internal/middleware"
)

// RegisterRoutes maps the chat endpoints. Every route is rate limited per
// client.
func RegisterRoutes(r gin.IRouter, h Handler, mw middleware.Middleware) {
	r.POST("/get_response", mw.RateLimit(), h.GetResponse)
	r.GET("/history", mw.RateLimit(), h.History)
	r.POST("/reset", mw.RateLimit(), h.Reset)
}
