package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mdrakibulislam10/bistro-boss-server/apperr"
	"github.com/mdrakibulislam10/bistro-boss-server/models"
)

// ReviewStore handles the reviews collection.
type ReviewStore struct {
	col *mongo.Collection
}

// All returns every review.
func (s *ReviewStore) All(ctx context.Context) ([]models.Review, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%w: list reviews: %v", apperr.ErrStorage, err)
	}
	defer cursor.Close(ctx)

	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("%w: decode reviews: %v", apperr.ErrStorage, err)
	}
	return reviews, nil
}
