package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/osa911/portfolio/internal/logging"
	"github.com/osa911/portfolio/internal/models"
	"github.com/osa911/portfolio/internal/repository"
	"github.com/osa911/portfolio/internal/validation"

	"github.com/go-playground/validator/v10"
)

// ProjectInput is the writable part of a project
type ProjectInput struct {
	Title        string   `json:"title" yaml:"title" validate:"notblank"`
	Description  string   `json:"description" yaml:"description" validate:"notblank"`
	Image        string   `json:"image" yaml:"image"`
	Technologies []string `json:"technologies" yaml:"technologies"`
	GithubLink   string   `json:"githubLink" yaml:"githubLink" validate:"weburl"`
	LiveLink     string   `json:"liveLink" yaml:"liveLink" validate:"weburl"`
	Featured     bool     `json:"featured" yaml:"featured"`
}

// ProjectService manages the portfolio project catalogue
type ProjectService struct {
	repo     repository.ProjectRepository
	validate *validator.Validate
	logger   *logging.Logger
}

// NewProjectService creates a new project service
func NewProjectService(repo repository.ProjectRepository) *ProjectService {
	return &ProjectService{
		repo:     repo,
		validate: validation.New(),
		logger:   logging.GetGlobalLogger(),
	}
}

// List returns all projects, newest first
func (s *ProjectService) List(ctx context.Context) ([]*models.Project, error) {
	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, logging.WrapError(err, "failed to list projects")
	}
	return projects, nil
}

// ListFeatured returns featured projects, newest first
func (s *ProjectService) ListFeatured(ctx context.Context) ([]*models.Project, error) {
	projects, err := s.repo.ListFeatured(ctx)
	if err != nil {
		return nil, logging.WrapError(err, "failed to list featured projects")
	}
	return projects, nil
}

// Create validates and stores one project
func (s *ProjectService) Create(ctx context.Context, input ProjectInput) (*models.Project, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)

	if err := s.validate.Struct(input); err != nil {
		fields := validation.FailedFields(err)
		for i, field := range fields {
			fields[i] = strings.ToLower(field)
		}
		return nil, &ValidationError{Fields: fields}
	}

	technologies := make([]string, 0, len(input.Technologies))
	for _, tech := range input.Technologies {
		if tech = strings.TrimSpace(tech); tech != "" {
			technologies = append(technologies, tech)
		}
	}

	project, err := s.repo.Create(ctx, &models.Project{
		Title:        input.Title,
		Description:  input.Description,
		Image:        strings.TrimSpace(input.Image),
		Technologies: technologies,
		GithubLink:   input.GithubLink,
		LiveLink:     input.LiveLink,
		Featured:     input.Featured,
	})
	if err != nil {
		return nil, logging.WrapError(err, "failed to create project")
	}

	s.logger.Info("Project created: %s (%s)", project.Title, project.ID)
	return project, nil
}

// Import creates each project in order and stops at the first failure.
// It returns the projects created before the failure.
func (s *ProjectService) Import(ctx context.Context, inputs []ProjectInput) ([]*models.Project, error) {
	created := make([]*models.Project, 0, len(inputs))
	for i, input := range inputs {
		project, err := s.Create(ctx, input)
		if err != nil {
			return created, fmt.Errorf("project %d (%q): %w", i+1, input.Title, err)
		}
		created = append(created, project)
	}
	return created, nil
}
