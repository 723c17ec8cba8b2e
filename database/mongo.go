package database

import (
	"context"
	"fmt"
	"time"

	"stockdock/config"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func InitMongoClient(sysConfigs *config.SystemConfigs) (*mongo.Client, *mongo.Database, error) {
	clientOptions := options.Client().ApplyURI(sysConfigs.Config.MongoUri)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, nil, fmt.Errorf("could not ping MongoDB: %w", err)
	}

	name := sysConfigs.Config.MongoDatabase
	log.Info().Str("database", name).Msg("Successfully connected to MongoDB")

	return client, client.Database(name), nil
}
