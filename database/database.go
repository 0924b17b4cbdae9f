package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names used by the services
const (
	CollectionProjects     = "projects"
	CollectionPersonalInfo = "personal_info"
	CollectionContacts     = "contacts"
	CollectionSkills       = "skills"
)

// Database is a thin adapter over the Mongo client. It carries no pooling,
// retry, or backoff logic beyond what the driver provides.
type Database struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect establishes the connection and makes sure the collections exist.
// A pre-existing collection is not an error.
func Connect(ctx context.Context, uri, name string) (*Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongo: %w", err)
	}

	db := client.Database(name)

	collections := []string{
		CollectionProjects,
		CollectionPersonalInfo,
		CollectionContacts,
		CollectionSkills,
	}
	for _, collection := range collections {
		if err := db.CreateCollection(ctx, collection); err != nil {
			if isNamespaceExists(err) {
				continue
			}
			return nil, fmt.Errorf("creating collection %s: %w", collection, err)
		}
	}

	log.Info().Str("database", name).Msg("Connected to MongoDB")

	return &Database{client: client, db: db}, nil
}

// Disconnect releases the connection. Safe to call on a Database that never
// connected.
func (d *Database) Disconnect(ctx context.Context) error {
	if d == nil || d.client == nil {
		return nil
	}
	if err := d.client.Disconnect(ctx); err != nil {
		return err
	}
	log.Info().Msg("Disconnected from MongoDB")
	return nil
}

// Mongo returns the database handle for the services. Before Connect it is
// nil and service calls against it fail with a connection error.
func (d *Database) Mongo() *mongo.Database {
	if d == nil {
		return nil
	}
	return d.db
}

// NamespaceExists is Mongo server error code 48.
func isNamespaceExists(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code == 48
	}
	return false
}
