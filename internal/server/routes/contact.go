package routes

import (
	"github.com/osa911/portfolio/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// SetupContactRoutes configures contact form routes
func SetupContactRoutes(router *gin.RouterGroup, contact *handlers.ContactHandler, m *Middleware) {
	// Public endpoint, throttled per client IP
	router.POST("/contact", m.ContactThrottle, contact.Submit)
}
