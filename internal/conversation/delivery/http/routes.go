package http

import (
	"github.com/gin-gonic/gin"

	"travel-assistant/internal/middleware"
)

// RegisterRoutes maps the conversation endpoints. /chat is rate limited.
func RegisterRoutes(r gin.IRouter, h *handler, mw middleware.Middleware) {
	r.POST("/chat", mw.RateLimit(), h.Chat)

	sessions := r.Group("/sessions")
	{
		sessions.GET("/:id", h.Session)
		sessions.DELETE("/:id", h.Reset)
	}
}
