package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/livesitter/livesitter-backend/internal/pkg/logger"
)

const connectTimeout = 10 * time.Second

// MongoService owns the Mongo client lifecycle: opened once at startup,
// closed at shutdown. A failed ping at startup is fatal for the process.
type MongoService struct {
	client *mongo.Client
	db     *mongo.Database
	log    *logger.Logger
}

func NewMongoService(ctx context.Context, uri, dbName string, baseLog *logger.Logger) (*MongoService, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	log := baseLog.With("component", "MongoService")
	log.Info("Connected to MongoDB", "database", dbName)
	return &MongoService{client: client, db: client.Database(dbName), log: log}, nil
}

func (ms *MongoService) Database() *mongo.Database { return ms.db }

func (ms *MongoService) Collection(name string) *mongo.Collection {
	return ms.db.Collection(name)
}

func (ms *MongoService) Close(ctx context.Context) error {
	ms.log.Info("Closing MongoDB connection")
	return ms.client.Disconnect(ctx)
}
