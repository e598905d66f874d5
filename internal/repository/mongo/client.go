// Package mongo implements the domain repositories on a MongoDB deployment.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"gothamai/internal/domain"
)

// Collection names.
const (
	ContactsCollection  = "contacts"
	EventsCollection    = "events"
	ResourcesCollection = "resources"
)

// ClientConfig bounds the pooled client.
type ClientConfig struct {
	URI                    string
	MaxPoolSize            uint64
	MinPoolSize            uint64
	MaxIdleTime            time.Duration
	ServerSelectionTimeout time.Duration
	SocketTimeout          time.Duration
}

// Connect opens a pooled client and pings the primary. The client is shared
// by every repository and must be disconnected on shutdown.
func Connect(ctx context.Context, cfg ClientConfig) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxIdleTime).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout).
		SetSocketTimeout(cfg.SocketTimeout).
		SetRetryWrites(true).
		SetRetryReads(true)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client, nil
}

// EnsureIndexes creates the unique slug indexes and the listing indexes.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)
	indexes := map[string][]mongo.IndexModel{
		EventsCollection: {
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "date", Value: -1}}},
			{Keys: bson.D{{Key: "published", Value: 1}}},
		},
		ResourcesCollection: {
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "type", Value: 1}, {Key: "category", Value: 1}}},
			{Keys: bson.D{{Key: "published", Value: 1}, {Key: "featured", Value: -1}}},
			{Keys: bson.D{{Key: "tags", Value: 1}}},
		},
		ContactsCollection: {
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
	}
	for coll, models := range indexes {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create %s indexes: %w", coll, err)
		}
	}
	return nil
}

// HealthChecker adapts *mongo.Client to domain.HealthChecker.
type HealthChecker struct {
	Client *mongo.Client
}

func (h HealthChecker) Ping(ctx context.Context) error {
	return h.Client.Ping(ctx, readpref.Primary())
}

// objectID parses a hex id; malformed ids can never match a document.
func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.ErrNotFound
	}
	return oid, nil
}

func notFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.ErrNotFound
	}
	return err
}
