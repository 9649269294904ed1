package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mdrakibulislam10/bistro-boss-server/apperr"
	"github.com/mdrakibulislam10/bistro-boss-server/models"
)

// MenuStore handles the menu collection.
type MenuStore struct {
	col *mongo.Collection
}

// All returns every menu item.
func (s *MenuStore) All(ctx context.Context) ([]models.MenuItem, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%w: list menu: %v", apperr.ErrStorage, err)
	}
	defer cursor.Close(ctx)

	items := []models.MenuItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("%w: decode menu: %v", apperr.ErrStorage, err)
	}
	return items, nil
}

// Insert persists a new menu item and returns its id.
func (s *MenuStore) Insert(ctx context.Context, item models.MenuItem) (primitive.ObjectID, error) {
	result, err := s.col.InsertOne(ctx, item)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: insert menu item: %v", apperr.ErrStorage, err)
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

// DeleteByID removes a single menu item and returns the deletion count.
func (s *MenuStore) DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("%w: delete menu item: %v", apperr.ErrStorage, err)
	}
	return result.DeletedCount, nil
}

// EstimatedCount returns a fast cardinality estimate of the collection.
func (s *MenuStore) EstimatedCount(ctx context.Context) (int64, error) {
	count, err := s.col.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: count menu: %v", apperr.ErrStorage, err)
	}
	return count, nil
}
