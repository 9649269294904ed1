// Package store owns the MongoDB connection and the per-collection data
// access types. The Store handle is constructed once at process start,
// injected into every component that needs it, and closed at shutdown.
package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Store aggregates the collection stores behind one lifecycle.
type Store struct {
	client *mongo.Client

	Users    *UserStore
	Menu     *MenuStore
	Reviews  *ReviewStore
	Carts    *CartStore
	Payments *PaymentStore
}

// Connect dials MongoDB, pings it, and builds the collection stores.
func Connect(ctx context.Context, uri, dbName string, log *zap.Logger) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	db := client.Database(dbName)
	log.Info("connected to MongoDB", zap.String("database", dbName))

	return &Store{
		client:   client,
		Users:    &UserStore{col: db.Collection("users")},
		Menu:     &MenuStore{col: db.Collection("menu")},
		Reviews:  &ReviewStore{col: db.Collection("reviews")},
		Carts:    &CartStore{col: db.Collection("carts")},
		Payments: &PaymentStore{col: db.Collection("payments"), menu: db.Collection("menu")},
	}, nil
}

// Close disconnects the underlying client.
func (s *Store) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}
