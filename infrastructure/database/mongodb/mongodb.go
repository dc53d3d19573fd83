package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/restaurant-analytics-api/internal/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type Connection struct {
	client   *mongo.Client
	database *mongo.Database
	cfg      config.MongoDB
}

func NewConnection(ctx context.Context, cfg config.MongoDB) (*Connection, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("erro ao conectar ao MongoDB: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("erro ao testar conexão com MongoDB: %w", err)
	}

	return &Connection{
		client:   client,
		database: client.Database(cfg.Database),
		cfg:      cfg,
	}, nil
}

func (c *Connection) Orders() *mongo.Collection {
	return c.database.Collection(c.cfg.OrdersCollection)
}

func (c *Connection) Restaurants() *mongo.Collection {
	return c.database.Collection(c.cfg.RestaurantsCollection)
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.client.Ping(ctx, readpref.Primary())
}

func (c *Connection) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}
