package database

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/vidboard/vidboard/internal/config"
)

type MongoDB struct {
	client   *mongo.Client
	database *mongo.Database
	boards   *mongo.Collection
}

var (
	shared     *MongoDB
	sharedErr  error
	sharedOnce sync.Once
)

// Connect returns the process-wide MongoDB handle, constructing it exactly
// once under concurrent first use. It stays open until process exit.
func Connect(cfg *config.MongoDBConfig) (*MongoDB, error) {
	sharedOnce.Do(func() {
		shared, sharedErr = NewMongoDB(cfg)
	})
	return shared, sharedErr
}

func NewMongoDB(cfg *config.MongoDBConfig) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	clientOptions := options.Client().ApplyURI(cfg.URI)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	db := client.Database(cfg.Database)

	mongodb := &MongoDB{
		client:   client,
		database: db,
		boards:   db.Collection("boards"),
	}

	if err := mongodb.createIndexes(ctx); err != nil {
		return nil, fmt.Errorf("failed to create indexes: %w", err)
	}

	return mongodb, nil
}

func (m *MongoDB) createIndexes(ctx context.Context) error {
	boardsIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "owner", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "created_at", Value: -1}},
		},
	}

	if _, err := m.boards.Indexes().CreateMany(ctx, boardsIndexes); err != nil {
		return fmt.Errorf("failed to create boards indexes: %w", err)
	}

	return nil
}

func (m *MongoDB) Boards() *mongo.Collection {
	return m.boards
}

func (m *MongoDB) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

func (m *MongoDB) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return m.client.Ping(ctx, readpref.Primary())
}
