package repository

import (
	"context"

	"github.com/osa911/portfolio/internal/models"
)

// Table and collection names shared by every backend
const (
	ContactsTable = "contacts"
	ProjectsTable = "projects"
)

// ContactRepository defines the storage operations for contact submissions
type ContactRepository interface {
	// Create stores a contact message. The repository assigns ID and, when
	// zero, CreatedAt.
	Create(ctx context.Context, contact *models.ContactMessage) (*models.ContactMessage, error)
	// List returns the most recent submissions, newest first
	List(ctx context.Context, limit int) ([]*models.ContactMessage, error)
}

// ProjectRepository defines the storage operations for portfolio projects
type ProjectRepository interface {
	// Create stores a project and returns it with ID and timestamps set
	Create(ctx context.Context, project *models.Project) (*models.Project, error)
	// List returns all projects, newest first
	List(ctx context.Context) ([]*models.Project, error)
	// ListFeatured returns projects flagged as featured, newest first
	ListFeatured(ctx context.Context) ([]*models.Project, error)
}
