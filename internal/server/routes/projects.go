package routes

import (
	"github.com/osa911/portfolio/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// SetupProjectRoutes configures the project catalogue routes
func SetupProjectRoutes(router *gin.RouterGroup, project *handlers.ProjectHandler, m *Middleware) {
	projects := router.Group("/projects")
	{
		projects.GET("", project.List)
		projects.GET("/featured", project.ListFeatured)
		projects.POST("", m.RequireAdmin, project.Create)
	}
}
