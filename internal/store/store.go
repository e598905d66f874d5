// Package store opens the configured database and builds the repositories on it.
package store

import (
	"context"
	"database/sql"
	"fmt"

	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"gothamai/config"
	"gothamai/internal/domain"
	"gothamai/internal/repository/mongo"
	"gothamai/internal/repository/postgres"
)

// Driver names.
const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongodb"
)

// Store bundles the repositories of one database connection.
type Store struct {
	Driver    string
	Contacts  domain.ContactRepository
	Events    domain.EventRepository
	Resources domain.ResourceRepository
	Health    domain.HealthChecker

	close func(ctx context.Context) error
}

// Open connects to the database named by cfg.URL. Postgres schemas are
// migrated and Mongo indexes are created before Open returns.
func Open(ctx context.Context, cfg config.Database) (*Store, error) {
	if cfg.IsMongo() {
		return openMongo(ctx, cfg)
	}
	return openPostgres(ctx, cfg)
}

// Close releases the underlying connection pool.
func (s *Store) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

func openPostgres(ctx context.Context, cfg config.Database) (*Store, error) {
	db, err := postgres.Open(ctx, cfg.URL, postgres.PoolConfig{
		MaxOpen:     cfg.MaxPoolSize,
		MaxIdle:     cfg.MinPoolSize,
		MaxIdleTime: cfg.MaxIdleTime,
		PingTimeout: cfg.ServerSelectionTimeout,
	})
	if err != nil {
		return nil, err
	}
	if err := postgres.Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return newPostgresStore(db), nil
}

func newPostgresStore(db *sql.DB) *Store {
	return &Store{
		Driver:    DriverPostgres,
		Contacts:  postgres.NewContactRepository(db),
		Events:    postgres.NewEventRepository(db),
		Resources: postgres.NewResourceRepository(db),
		Health:    postgres.HealthChecker{DB: db},
		close:     func(context.Context) error { return db.Close() },
	}
}

func openMongo(ctx context.Context, cfg config.Database) (*Store, error) {
	client, err := mongo.Connect(ctx, mongo.ClientConfig{
		URI:                    cfg.URL,
		MaxPoolSize:            uint64(cfg.MaxPoolSize),
		MinPoolSize:            uint64(cfg.MinPoolSize),
		MaxIdleTime:            cfg.MaxIdleTime,
		ServerSelectionTimeout: cfg.ServerSelectionTimeout,
		SocketTimeout:          cfg.SocketTimeout,
	})
	if err != nil {
		return nil, err
	}
	db := client.Database(cfg.Name)
	if err := mongo.EnsureIndexes(ctx, db); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ensure indexes: %w", err)
	}
	return newMongoStore(client, db), nil
}

func newMongoStore(client *mongodriver.Client, db *mongodriver.Database) *Store {
	return &Store{
		Driver:    DriverMongo,
		Contacts:  mongo.NewContactRepository(db),
		Events:    mongo.NewEventRepository(db),
		Resources: mongo.NewResourceRepository(db),
		Health:    mongo.HealthChecker{Client: client},
		close:     client.Disconnect,
	}
}
