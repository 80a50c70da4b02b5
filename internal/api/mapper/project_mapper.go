package mapper

import (
	"github.com/osa911/portfolio/internal/api/dto/project"
	"github.com/osa911/portfolio/internal/models"
	"github.com/osa911/portfolio/internal/service"
)

// ProjectInputFromRequest converts a create request to service input.
// An absent featured flag means false.
func ProjectInputFromRequest(req *project.CreateProjectRequest) service.ProjectInput {
	if req == nil {
		return service.ProjectInput{}
	}
	input := service.ProjectInput{
		Title:        req.Title,
		Description:  req.Description,
		Image:        req.Image,
		Technologies: req.Technologies,
		GithubLink:   req.GithubLink,
		LiveLink:     req.LiveLink,
	}
	if req.Featured != nil {
		input.Featured = *req.Featured
	}
	return input
}

// ProjectsOrEmpty never returns nil so list endpoints always encode an array
func ProjectsOrEmpty(projects []*models.Project) []*models.Project {
	if projects == nil {
		return []*models.Project{}
	}
	return projects
}
