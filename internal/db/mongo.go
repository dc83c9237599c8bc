package db

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Gateway owns the single MongoDB client for the process. The connection is
// opened lazily on first use and reused by every later caller.
type Gateway struct {
	uri  string
	name string

	mu     sync.Mutex
	client *mongo.Client
}

func NewGateway(uri, name string) *Gateway {
	return &Gateway{uri: uri, name: name}
}

// Connect returns the live client, opening it if no connection exists yet.
// The mutex holds concurrent first callers on the same attempt instead of
// letting them open duplicate connections.
func (g *Gateway) Connect(ctx context.Context) (*mongo.Client, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.client != nil {
		return g.client, nil
	}

	if g.uri == "" {
		return nil, fmt.Errorf("environment variable MONGODB_URI not found")
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(g.uri))
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	g.client = client
	return client, nil
}

// Database connects if needed and returns the configured database handle.
func (g *Gateway) Database(ctx context.Context) (*mongo.Database, error) {
	client, err := g.Connect(ctx)
	if err != nil {
		return nil, err
	}
	return client.Database(g.name), nil
}

func (g *Gateway) Close(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.client == nil {
		return nil
	}
	err := g.client.Disconnect(ctx)
	g.client = nil
	return err
}
