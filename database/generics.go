package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UpsertById replaces the document with the given _id, inserting it when absent,
// and returns the stored document.
func UpsertById[T any](ctx context.Context, collection *mongo.Collection, id string, data T) (*T, error) {
	opts := options.FindOneAndReplace().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var stored T
	err := collection.FindOneAndReplace(ctx, bson.M{"_id": id}, data, opts).Decode(&stored)
	if err != nil {
		return nil, err
	}

	return &stored, nil
}
