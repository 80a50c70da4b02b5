package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/osa911/portfolio/internal/logging"
	"github.com/osa911/portfolio/internal/models"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

var contactColumns = []string{"id", "name", "email", "subject", "message", "created_at"}

// contactRepository implements ContactRepository on top of an ent SQL driver
type contactRepository struct {
	drv dialect.Driver
}

// NewContactRepository creates a new ContactRepository backed by SQL
func NewContactRepository(drv dialect.Driver) ContactRepository {
	return &contactRepository{
		drv: drv,
	}
}

func (r *contactRepository) Create(ctx context.Context, contact *models.ContactMessage) (*models.ContactMessage, error) {
	stored := *contact
	stored.ID = uuid.NewString()
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}

	query, args := entsql.Dialect(r.drv.Dialect()).
		Insert(ContactsTable).
		Columns(contactColumns...).
		Values(stored.ID, stored.Name, stored.Email, stored.Subject, stored.Message, stored.CreatedAt).
		Query()

	var res sql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return nil, logging.WrapError(err, "failed to insert contact")
	}
	return &stored, nil
}

func (r *contactRepository) List(ctx context.Context, limit int) ([]*models.ContactMessage, error) {
	selector := entsql.Dialect(r.drv.Dialect()).
		Select(contactColumns...).
		From(entsql.Table(ContactsTable)).
		OrderBy(entsql.Desc("created_at"))
	if limit > 0 {
		selector.Limit(limit)
	}
	query, args := selector.Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, logging.WrapError(err, "failed to query contacts")
	}
	defer rows.Close()

	var contacts []*models.ContactMessage
	for rows.Next() {
		c := &models.ContactMessage{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Subject, &c.Message, &c.CreatedAt); err != nil {
			return nil, logging.WrapError(err, "failed to scan contact")
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}
