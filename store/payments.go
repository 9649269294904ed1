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

// PaymentStore handles the append-only payments collection and the
// aggregations derived from it.
type PaymentStore struct {
	col  *mongo.Collection
	menu *mongo.Collection
}

// Insert persists a payment document and returns its id.
func (s *PaymentStore) Insert(ctx context.Context, payment models.Payment) (primitive.ObjectID, error) {
	result, err := s.col.InsertOne(ctx, payment)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: insert payment: %v", apperr.ErrStorage, err)
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

// MarkUnreconciled flags a payment whose cart cleanup did not fully succeed
// so an operator can reconcile it manually.
func (s *PaymentStore) MarkUnreconciled(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"needs_reconciliation": true}},
	)
	if err != nil {
		return fmt.Errorf("%w: mark payment unreconciled: %v", apperr.ErrStorage, err)
	}
	return nil
}

// EstimatedCount returns a fast cardinality estimate of the collection.
func (s *PaymentStore) EstimatedCount(ctx context.Context) (int64, error) {
	count, err := s.col.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: count payments: %v", apperr.ErrStorage, err)
	}
	return count, nil
}

// TotalRevenue sums the price field across every payment. An empty
// collection yields 0.
func (s *PaymentStore) TotalRevenue(ctx context.Context) (float64, error) {
	cursor, err := s.col.Aggregate(ctx, revenuePipeline())
	if err != nil {
		return 0, fmt.Errorf("%w: revenue aggregation: %v", apperr.ErrStorage, err)
	}
	defer cursor.Close(ctx)

	var out []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &out); err != nil {
		return 0, fmt.Errorf("%w: decode revenue: %v", apperr.ErrStorage, err)
	}
	if len(out) == 0 {
		return 0, nil
	}
	return out[0].Total, nil
}

// OrderStatsByCategory expands every payment's menu item references against
// the menu collection and groups the rows by category. Dangling references
// drop out at the $unwind stage; categories with no rows are never emitted.
func (s *PaymentStore) OrderStatsByCategory(ctx context.Context) ([]models.OrderStatRow, error) {
	cursor, err := s.col.Aggregate(ctx, orderStatsPipeline(s.menu.Name()))
	if err != nil {
		return nil, fmt.Errorf("%w: order-stats aggregation: %v", apperr.ErrStorage, err)
	}
	defer cursor.Close(ctx)

	rows := []models.OrderStatRow{}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("%w: decode order stats: %v", apperr.ErrStorage, err)
	}
	return rows, nil
}

func revenuePipeline() mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$price"}}},
		}}},
	}
}

func orderStatsPipeline(menuCollection string) mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: menuCollection},
			{Key: "localField", Value: "menuItems"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "menuItemsData"},
		}}},
		bson.D{{Key: "$unwind", Value: "$menuItemsData"}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$menuItemsData.category"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$menuItemsData.price"}}},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "category", Value: "$_id"},
			{Key: "count", Value: 1},
			{Key: "total", Value: bson.D{{Key: "$round", Value: bson.A{"$total", 2}}}},
			{Key: "_id", Value: 0},
		}}},
	}
}
