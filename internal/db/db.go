package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/osa911/portfolio/internal/config"
	"github.com/osa911/portfolio/internal/logging"
	"github.com/osa911/portfolio/internal/repository"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"
	_ "github.com/lib/pq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

// Supported storage backends
const (
	BackendPostgres = "postgres"
	BackendMongo    = "mongo"
)

// Database bundles the repositories of one storage backend with its lifecycle hooks
type Database struct {
	Contacts repository.ContactRepository
	Projects repository.ProjectRepository

	backend string
	ping    func(ctx context.Context) error
	migrate func(ctx context.Context) error
	close   func(ctx context.Context) error
}

// BackendFor picks the storage backend from the connection string scheme
func BackendFor(databaseURL string) string {
	if strings.HasPrefix(databaseURL, "mongodb://") || strings.HasPrefix(databaseURL, "mongodb+srv://") {
		return BackendMongo
	}
	return BackendPostgres
}

// Open connects to the store named by cfg.DatabaseURL
func Open(ctx context.Context, cfg *config.Config) (*Database, error) {
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("%w: DATABASE_URL is empty", logging.ErrInvalidConfig)
	}

	switch BackendFor(cfg.DatabaseURL) {
	case BackendMongo:
		return openMongo(ctx, cfg)
	default:
		return openPostgres(cfg)
	}
}

func openPostgres(cfg *config.Config) (*Database, error) {
	drv, err := entsql.Open(dialect.Postgres, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return NewSQLDatabase(drv), nil
}

// NewSQLDatabase wraps an already opened ent SQL driver
func NewSQLDatabase(drv *entsql.Driver) *Database {
	return &Database{
		Contacts: repository.NewContactRepository(drv),
		Projects: repository.NewProjectRepository(drv),
		backend:  BackendPostgres,
		ping: func(ctx context.Context) error {
			return drv.DB().PingContext(ctx)
		},
		migrate: func(ctx context.Context) error {
			migrate, err := schema.NewMigrate(drv)
			if err != nil {
				return err
			}
			return migrate.Create(ctx, Tables...)
		},
		close: func(context.Context) error {
			return drv.Close()
		},
	}
}

func openMongo(ctx context.Context, cfg *config.Config) (*Database, error) {
	name := cfg.DatabaseName
	if cs, err := connstring.ParseAndValidate(cfg.DatabaseURL); err == nil && cs.Database != "" {
		name = cs.Database
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.DatabaseURL))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return NewMongoDatabase(client.Database(name)), nil
}

// NewMongoDatabase wraps an already connected MongoDB database
func NewMongoDatabase(mdb *mongo.Database) *Database {
	return &Database{
		Contacts: repository.NewMongoContactRepository(mdb),
		Projects: repository.NewMongoProjectRepository(mdb),
		backend:  BackendMongo,
		ping: func(ctx context.Context) error {
			return mdb.Client().Ping(ctx, readpref.Primary())
		},
		migrate: func(ctx context.Context) error {
			indexes := map[string]mongo.IndexModel{
				repository.ContactsTable: {Keys: bson.D{{Key: "createdAt", Value: -1}}},
				repository.ProjectsTable: {Keys: bson.D{{Key: "featured", Value: 1}, {Key: "createdAt", Value: -1}}},
			}
			for collection, index := range indexes {
				if _, err := mdb.Collection(collection).Indexes().CreateOne(ctx, index); err != nil {
					return fmt.Errorf("failed to create index on %s: %w", collection, err)
				}
			}
			return nil
		},
		close: func(ctx context.Context) error {
			return mdb.Client().Disconnect(ctx)
		},
	}
}

// Backend reports which storage backend is in use
func (d *Database) Backend() string {
	return d.backend
}

// Ping checks that the store is reachable
func (d *Database) Ping(ctx context.Context) error {
	if err := d.ping(ctx); err != nil {
		return logging.WrapError(fmt.Errorf("%w: %v", logging.ErrConnection, err), d.backend)
	}
	return nil
}

// Migrate creates missing tables, collections and indexes
func (d *Database) Migrate(ctx context.Context) error {
	if err := d.migrate(ctx); err != nil {
		return fmt.Errorf("failed creating schema resources: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool
func (d *Database) Close(ctx context.Context) error {
	return d.close(ctx)
}
