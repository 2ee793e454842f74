package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	"github.com/yigit/campus-survey/internal/config"
)

// DefaultMongoDatabase is used when neither the URI nor the config names a database.
const DefaultMongoDatabase = "campus_survey"

// MongoDB holds the client session and the database the collections live in
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// NewMongoDB creates a MongoDB client. The driver connects lazily, so an unreachable
// server is not an error here; callers observe it through Ping.
func NewMongoDB(cfg *config.Config) (*MongoDB, error) {
	uri := cfg.Database.MongoURI

	dbName, err := MongoDatabaseName(uri, cfg.Database.MongoDatabase)
	if err != nil {
		return nil, err
	}

	timeout := cfg.ConnectTimeout()
	clientOpts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout).
		SetMaxPoolSize(uint64(cfg.Database.MaxOpenConns)).
		SetMinPoolSize(uint64(cfg.Database.MaxIdleConns)).
		SetMaxConnIdleTime(cfg.ConnMaxLifetime()).
		SetAppName("campus-survey")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongodb client: %w", err)
	}

	return &MongoDB{
		Client:   client,
		Database: client.Database(dbName),
	}, nil
}

// MongoDatabaseName resolves the database name: explicit config first, then the
// path component of the URI, then DefaultMongoDatabase.
func MongoDatabaseName(uri, configured string) (string, error) {
	if configured != "" {
		return configured, nil
	}
	cs, err := connstring.ParseAndValidate(uri)
	if err != nil {
		return "", fmt.Errorf("failed to parse mongodb uri: %w", err)
	}
	if cs.Database != "" {
		return cs.Database, nil
	}
	return DefaultMongoDatabase, nil
}

// Ping checks that the primary is reachable
func (db *MongoDB) Ping(ctx context.Context) error {
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
	}
	return db.Client.Ping(ctx, readpref.Primary())
}

// Collection returns a handle to the named collection
func (db *MongoDB) Collection(name string) *mongo.Collection {
	return db.Database.Collection(name)
}

// Close disconnects the client
func (db *MongoDB) Close(ctx context.Context) error {
	if db.Client == nil {
		return nil
	}
	return db.Client.Disconnect(ctx)
}
