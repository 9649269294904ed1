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

// CartStore handles the carts collection.
type CartStore struct {
	col *mongo.Collection
}

// FindByEmail returns every cart item owned by the given email.
func (s *CartStore) FindByEmail(ctx context.Context, email string) ([]models.CartItem, error) {
	cursor, err := s.col.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("%w: list cart: %v", apperr.ErrStorage, err)
	}
	defer cursor.Close(ctx)

	items := []models.CartItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("%w: decode cart: %v", apperr.ErrStorage, err)
	}
	return items, nil
}

// FindByID returns a single cart item.
func (s *CartStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.CartItem, error) {
	var item models.CartItem
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("%w: find cart item: %v", apperr.ErrStorage, err)
	}
	return &item, nil
}

// Insert persists a new cart item and returns its id.
func (s *CartStore) Insert(ctx context.Context, item models.CartItem) (primitive.ObjectID, error) {
	result, err := s.col.InsertOne(ctx, item)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: insert cart item: %v", apperr.ErrStorage, err)
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

// DeleteByID removes a single cart item and returns the deletion count.
func (s *CartStore) DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("%w: delete cart item: %v", apperr.ErrStorage, err)
	}
	return result.DeletedCount, nil
}

// DeleteByIDs removes every cart item whose id is in the set and returns the
// deletion count. Settlement uses the count to detect partial reconciliation.
func (s *CartStore) DeleteByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	result, err := s.col.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return 0, fmt.Errorf("%w: delete cart items: %v", apperr.ErrStorage, err)
	}
	return result.DeletedCount, nil
}
