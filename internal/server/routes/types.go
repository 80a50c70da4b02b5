package routes

import (
	"github.com/osa911/portfolio/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// Handlers contains all the route handlers
type Handlers struct {
	Contact *handlers.ContactHandler
	Project *handlers.ProjectHandler
	Health  *handlers.HealthHandler
}

// Middleware contains the route-specific middleware
type Middleware struct {
	ContactThrottle gin.HandlerFunc
	RequireAdmin    gin.HandlerFunc
}
