package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/proposaldesk/intake-api/internal/core/domain"
)

const defaultTimeout = 10 * time.Second

const (
	collectionUsers        = "users"
	collectionTestimonials = "testimonials"
	collectionProposals    = "proposals"
)

// Config captures the minimal settings required to establish a MongoDB connection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Gateway is the shared handle to the document store. A Gateway without a
// database is unavailable: every repository call through it fails with
// domain.ErrStoreUnavailable while the HTTP server keeps running.
type Gateway struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewGateway wraps an already selected database. Passing nil yields an
// unavailable gateway.
func NewGateway(db *mongo.Database) *Gateway {
	g := &Gateway{db: db}
	if db != nil {
		g.client = db.Client()
	}
	return g
}

// Open creates the client and pings the server. It always returns a Gateway.
// A client that cannot be created leaves the gateway unavailable; a failed
// ping is reported but the client is kept, since the driver reconnects on its
// own once the server is reachable.
func Open(ctx context.Context, cfg Config) (*Gateway, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI).SetServerSelectionTimeout(timeout))
	if err != nil {
		return NewGateway(nil), fmt.Errorf("mongo connect: %w", err)
	}

	g := NewGateway(client.Database(cfg.Database))
	if err := client.Ping(connectCtx, nil); err != nil {
		return g, fmt.Errorf("mongo ping: %w", err)
	}
	return g, nil
}

// Available reports whether the gateway holds a database handle.
func (g *Gateway) Available() bool {
	return g != nil && g.db != nil
}

func (g *Gateway) collection(name string) (*mongo.Collection, error) {
	if !g.Available() {
		return nil, domain.ErrStoreUnavailable
	}
	return g.db.Collection(name), nil
}

// Ping checks server reachability for readiness probes.
func (g *Gateway) Ping(ctx context.Context) error {
	if !g.Available() {
		return domain.ErrStoreUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return g.client.Ping(ctx, nil)
}

// EnsureIndexes creates the lookup indexes on email. They are not unique:
// duplicate users by email are allowed.
func (g *Gateway) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	for _, name := range []string{collectionUsers, collectionProposals} {
		col, err := g.collection(name)
		if err != nil {
			return err
		}
		_, err = col.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: bson.D{{Key: "email", Value: 1}}})
		if err != nil {
			return fmt.Errorf("index %s.email: %w", name, err)
		}
	}
	return nil
}

// Disconnect closes the client, if any.
func (g *Gateway) Disconnect(ctx context.Context) error {
	if g == nil || g.client == nil {
		return nil
	}
	return g.client.Disconnect(ctx)
}

func toUpdateResult(res *mongo.UpdateResult) *domain.UpdateResult {
	return &domain.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}
}
