package repository

import (
	"context"
	"errors"
	"fmt"

	"stockdock/database"
	"stockdock/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type CurrentStockRepository struct {
	collection *mongo.Collection
}

func NewCurrentStockRepository(db *mongo.Database) *CurrentStockRepository {
	return &CurrentStockRepository{
		collection: db.Collection(model.CurrentStockCollectionName),
	}
}

// Save replaces the document of the stock's symbol, inserting it if needed.
func (r *CurrentStockRepository) Save(ctx context.Context, stock model.CurrentStock) error {
	if _, err := database.UpsertById(ctx, r.collection, stock.Symbol, stock); err != nil {
		return fmt.Errorf("failed to save %s: %w", stock.Symbol, err)
	}
	return nil
}

func (r *CurrentStockRepository) FindById(ctx context.Context, symbol string) (*model.CurrentStock, error) {
	var stock model.CurrentStock
	err := r.collection.FindOne(ctx, bson.M{"_id": symbol}).Decode(&stock)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &stock, nil
}

func (r *CurrentStockRepository) FindAll(ctx context.Context) ([]model.CurrentStock, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to execute find: %w", err)
	}
	defer cursor.Close(ctx)

	var stocks []model.CurrentStock
	if err := cursor.All(ctx, &stocks); err != nil {
		return nil, fmt.Errorf("failed to decode current stocks: %w", err)
	}

	if stocks == nil {
		return []model.CurrentStock{}, nil
	}
	return stocks, nil
}
