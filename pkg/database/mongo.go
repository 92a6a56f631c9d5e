package database

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/edudesk/edudesk-api/pkg/config"
)

var (
	sharedOnce   sync.Once
	sharedClient *mongo.Client
	sharedErr    error
)

// Connect dials a new MongoDB client and verifies connectivity with a ping.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, error) {
	opts := options.Client().ApplyURI(cfg.URI)
	if cfg.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(cfg.MaxPoolSize)
	}
	if cfg.ConnectTimeout > 0 {
		opts.SetConnectTimeout(cfg.ConnectTimeout)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	pingCtx := ctx
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return client, nil
}

// Shared returns the process-wide client, dialing it exactly once. Concurrent
// first callers block on the same dial instead of opening duplicate
// connections; the driver pools and is safe for concurrent use afterwards.
func Shared(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, error) {
	sharedOnce.Do(func() {
		sharedClient, sharedErr = Connect(ctx, cfg)
	})
	return sharedClient, sharedErr
}

// SharedDatabase resolves the configured database handle on the shared client.
func SharedDatabase(ctx context.Context, cfg config.MongoConfig) (*mongo.Database, error) {
	client, err := Shared(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return client.Database(cfg.Database), nil
}
