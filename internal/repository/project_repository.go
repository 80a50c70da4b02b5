package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/osa911/portfolio/internal/logging"
	"github.com/osa911/portfolio/internal/models"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

var projectColumns = []string{
	"id", "title", "description", "image", "technologies",
	"github_link", "live_link", "featured", "created_at", "updated_at",
}

// projectRepository implements ProjectRepository on top of an ent SQL driver
type projectRepository struct {
	drv dialect.Driver
}

// NewProjectRepository creates a new ProjectRepository backed by SQL
func NewProjectRepository(drv dialect.Driver) ProjectRepository {
	return &projectRepository{
		drv: drv,
	}
}

func (r *projectRepository) Create(ctx context.Context, project *models.Project) (*models.Project, error) {
	stored := *project
	stored.ID = uuid.NewString()
	if stored.Technologies == nil {
		stored.Technologies = []string{}
	}
	now := time.Now().UTC()
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = now
	}
	stored.UpdatedAt = now

	technologies, err := json.Marshal(stored.Technologies)
	if err != nil {
		return nil, logging.WrapError(err, "failed to encode technologies")
	}

	query, args := entsql.Dialect(r.drv.Dialect()).
		Insert(ProjectsTable).
		Columns(projectColumns...).
		Values(
			stored.ID, stored.Title, stored.Description, stored.Image, string(technologies),
			stored.GithubLink, stored.LiveLink, stored.Featured, stored.CreatedAt, stored.UpdatedAt,
		).
		Query()

	var res sql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return nil, logging.WrapError(err, "failed to insert project")
	}
	return &stored, nil
}

func (r *projectRepository) List(ctx context.Context) ([]*models.Project, error) {
	return r.query(ctx, false)
}

func (r *projectRepository) ListFeatured(ctx context.Context) ([]*models.Project, error) {
	return r.query(ctx, true)
}

func (r *projectRepository) query(ctx context.Context, featuredOnly bool) ([]*models.Project, error) {
	selector := entsql.Dialect(r.drv.Dialect()).
		Select(projectColumns...).
		From(entsql.Table(ProjectsTable)).
		OrderBy(entsql.Desc("created_at"))
	if featuredOnly {
		selector.Where(entsql.EQ("featured", true))
	}
	query, args := selector.Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, logging.WrapError(err, "failed to query projects")
	}
	defer rows.Close()

	projects := []*models.Project{}
	for rows.Next() {
		p := &models.Project{}
		var technologies []byte
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Description, &p.Image, &technologies,
			&p.GithubLink, &p.LiveLink, &p.Featured, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, logging.WrapError(err, "failed to scan project")
		}
		p.Technologies = []string{}
		if len(technologies) > 0 {
			if err := json.Unmarshal(technologies, &p.Technologies); err != nil {
				return nil, logging.WrapError(err, "failed to decode technologies")
			}
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}
