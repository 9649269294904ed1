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

// UserStore handles the users collection.
type UserStore struct {
	col *mongo.Collection
}

// FindByEmail looks up a user by the case-sensitive email key.
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("%w: find user: %v", apperr.ErrStorage, err)
	}
	return &user, nil
}

// Insert persists a new user and returns its id.
func (s *UserStore) Insert(ctx context.Context, user models.User) (primitive.ObjectID, error) {
	result, err := s.col.InsertOne(ctx, user)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: insert user: %v", apperr.ErrStorage, err)
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

// PromoteToAdmin sets the user's role to admin. Returns apperr.ErrNotFound
// when no user matches the id.
func (s *UserStore) PromoteToAdmin(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"role": models.RoleAdmin}},
	)
	if err != nil {
		return fmt.Errorf("%w: promote user: %v", apperr.ErrStorage, err)
	}
	if result.MatchedCount == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// All returns every user.
func (s *UserStore) All(ctx context.Context) ([]models.User, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%w: list users: %v", apperr.ErrStorage, err)
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("%w: decode users: %v", apperr.ErrStorage, err)
	}
	return users, nil
}

// EstimatedCount returns a fast cardinality estimate of the collection.
func (s *UserStore) EstimatedCount(ctx context.Context) (int64, error) {
	count, err := s.col.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: count users: %v", apperr.ErrStorage, err)
	}
	return count, nil
}
