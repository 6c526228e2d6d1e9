package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

// DefaultDatabaseName is used when neither the configuration nor the
// connection string names a database.
const DefaultDatabaseName = "test"

// Connect creates a client for uri and returns the database named by name,
// by the URI path, or DefaultDatabaseName, in that order. The driver
// connects lazily; use Ping to verify reachability.
func Connect(ctx context.Context, uri, name string, timeout time.Duration) (*mongo.Database, error) {
	dbName, err := DatabaseName(uri, name)
	if err != nil {
		return nil, err
	}

	opts := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(timeout).
		SetConnectTimeout(timeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongodb client: %w", err)
	}

	return client.Database(dbName), nil
}

// DatabaseName resolves the database to use for uri.
func DatabaseName(uri, override string) (string, error) {
	if override != "" {
		return override, nil
	}

	cs, err := connstring.ParseAndValidate(uri)
	if err != nil {
		return "", fmt.Errorf("invalid mongodb connection string: %w", err)
	}
	if cs.Database != "" {
		return cs.Database, nil
	}
	return DefaultDatabaseName, nil
}

// Ping checks that the primary of the deployment behind db is reachable.
func Ping(ctx context.Context, db *mongo.Database) error {
	return db.Client().Ping(ctx, readpref.Primary())
}

// Disconnect closes every connection of the client behind db.
func Disconnect(ctx context.Context, db *mongo.Database) error {
	return db.Client().Disconnect(ctx)
}
