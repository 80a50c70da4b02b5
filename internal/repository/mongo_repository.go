package repository

import (
	"context"
	"time"

	"github.com/osa911/portfolio/internal/logging"
	"github.com/osa911/portfolio/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Document shapes mirror the collections written by the previous Node
// deployment so existing data stays readable.

type contactDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Subject   string             `bson:"subject,omitempty"`
	Message   string             `bson:"message"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func (d *contactDocument) toModel() *models.ContactMessage {
	return &models.ContactMessage{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Email:     d.Email,
		Subject:   d.Subject,
		Message:   d.Message,
		CreatedAt: d.CreatedAt,
	}
}

type projectDocument struct {
	ID           primitive.ObjectID `bson:"_id"`
	Title        string             `bson:"title"`
	Description  string             `bson:"description"`
	Image        string             `bson:"image,omitempty"`
	Technologies []string           `bson:"technologies"`
	GithubLink   string             `bson:"githubLink,omitempty"`
	LiveLink     string             `bson:"liveLink,omitempty"`
	Featured     bool               `bson:"featured"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}

func (d *projectDocument) toModel() *models.Project {
	technologies := d.Technologies
	if technologies == nil {
		technologies = []string{}
	}
	return &models.Project{
		ID:           d.ID.Hex(),
		Title:        d.Title,
		Description:  d.Description,
		Image:        d.Image,
		Technologies: technologies,
		GithubLink:   d.GithubLink,
		LiveLink:     d.LiveLink,
		Featured:     d.Featured,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// mongoContactRepository implements ContactRepository on a MongoDB collection
type mongoContactRepository struct {
	collection *mongo.Collection
}

// NewMongoContactRepository creates a ContactRepository backed by MongoDB
func NewMongoContactRepository(db *mongo.Database) ContactRepository {
	return &mongoContactRepository{
		collection: db.Collection(ContactsTable),
	}
}

func (r *mongoContactRepository) Create(ctx context.Context, contact *models.ContactMessage) (*models.ContactMessage, error) {
	createdAt := contact.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	doc := &contactDocument{
		ID:        primitive.NewObjectID(),
		Name:      contact.Name,
		Email:     contact.Email,
		Subject:   contact.Subject,
		Message:   contact.Message,
		CreatedAt: createdAt,
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return nil, logging.WrapError(err, "failed to insert contact")
	}
	return doc.toModel(), nil
}

func (r *mongoContactRepository) List(ctx context.Context, limit int) ([]*models.ContactMessage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, logging.WrapError(err, "failed to query contacts")
	}

	var docs []contactDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, logging.WrapError(err, "failed to decode contacts")
	}

	contacts := make([]*models.ContactMessage, 0, len(docs))
	for i := range docs {
		contacts = append(contacts, docs[i].toModel())
	}
	return contacts, nil
}

// mongoProjectRepository implements ProjectRepository on a MongoDB collection
type mongoProjectRepository struct {
	collection *mongo.Collection
}

// NewMongoProjectRepository creates a ProjectRepository backed by MongoDB
func NewMongoProjectRepository(db *mongo.Database) ProjectRepository {
	return &mongoProjectRepository{
		collection: db.Collection(ProjectsTable),
	}
}

func (r *mongoProjectRepository) Create(ctx context.Context, project *models.Project) (*models.Project, error) {
	now := time.Now().UTC()
	createdAt := project.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}
	technologies := project.Technologies
	if technologies == nil {
		technologies = []string{}
	}

	doc := &projectDocument{
		ID:           primitive.NewObjectID(),
		Title:        project.Title,
		Description:  project.Description,
		Image:        project.Image,
		Technologies: technologies,
		GithubLink:   project.GithubLink,
		LiveLink:     project.LiveLink,
		Featured:     project.Featured,
		CreatedAt:    createdAt,
		UpdatedAt:    now,
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return nil, logging.WrapError(err, "failed to insert project")
	}
	return doc.toModel(), nil
}

func (r *mongoProjectRepository) List(ctx context.Context) ([]*models.Project, error) {
	return r.find(ctx, bson.D{})
}

func (r *mongoProjectRepository) ListFeatured(ctx context.Context) ([]*models.Project, error) {
	return r.find(ctx, bson.D{{Key: "featured", Value: true}})
}

func (r *mongoProjectRepository) find(ctx context.Context, filter bson.D) ([]*models.Project, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, logging.WrapError(err, "failed to query projects")
	}

	var docs []projectDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, logging.WrapError(err, "failed to decode projects")
	}

	projects := make([]*models.Project, 0, len(docs))
	for i := range docs {
		projects = append(projects, docs[i].toModel())
	}
	return projects, nil
}
