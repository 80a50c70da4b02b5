package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/osa911/portfolio/internal/api/dto/common"
	"github.com/osa911/portfolio/internal/api/dto/project"
	"github.com/osa911/portfolio/internal/api/mapper"
	"github.com/osa911/portfolio/internal/models"
	"github.com/osa911/portfolio/internal/service"
	"github.com/osa911/portfolio/internal/utils"

	"github.com/gin-gonic/gin"
)

// ProjectCatalogue is the project service as seen by the HTTP layer
type ProjectCatalogue interface {
	List(ctx context.Context) ([]*models.Project, error)
	ListFeatured(ctx context.Context) ([]*models.Project, error)
	Create(ctx context.Context, input service.ProjectInput) (*models.Project, error)
}

type ProjectHandler struct {
	projectService ProjectCatalogue
}

func NewProjectHandler(projectService ProjectCatalogue) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// List handles GET /api/projects
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projectService.List(c.Request.Context())
	if err != nil {
		utils.HandleAPIError(c, err, http.StatusInternalServerError, common.MessageServerError)
		return
	}
	utils.HandleSuccess(c, mapper.ProjectsOrEmpty(projects))
}

// ListFeatured handles GET /api/projects/featured
func (h *ProjectHandler) ListFeatured(c *gin.Context) {
	projects, err := h.projectService.ListFeatured(c.Request.Context())
	if err != nil {
		utils.HandleAPIError(c, err, http.StatusInternalServerError, common.MessageServerError)
		return
	}
	utils.HandleSuccess(c, mapper.ProjectsOrEmpty(projects))
}

// Create handles POST /api/projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req project.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleAPIError(c, err, http.StatusBadRequest, common.MessageProjectInvalid)
		return
	}

	created, err := h.projectService.Create(c.Request.Context(), mapper.ProjectInputFromRequest(&req))
	if errors.Is(err, service.ErrValidation) {
		utils.HandleAPIError(c, err, http.StatusBadRequest, common.MessageProjectInvalid)
		return
	}
	if err != nil {
		utils.HandleAPIError(c, err, http.StatusInternalServerError, common.MessageServerError)
		return
	}
	utils.HandleCreated(c, created)
}
