package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is the append-only record of one settled payment. It references the
// cart items it cleared and the menu items that were ordered; those references
// feed the order-stats aggregation.
type Payment struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty" json:"id,omitempty"`
	Email         string               `bson:"email" json:"email"`
	Price         float64              `bson:"price" json:"price"`
	PaymentMethod string               `bson:"payment_method" json:"payment_method"`
	TransactionID string               `bson:"transaction_id" json:"transaction_id"`
	CartItemIDs   []primitive.ObjectID `bson:"cartItems" json:"cartItems"`
	MenuItemIDs   []primitive.ObjectID `bson:"menuItems" json:"menuItems"`
	CreatedAt     time.Time            `bson:"created_at" json:"created_at"`

	// NeedsReconciliation is set when the cart cleanup after insertion
	// removed fewer items than the payment references.
	NeedsReconciliation bool `bson:"needs_reconciliation,omitempty" json:"needs_reconciliation,omitempty"`
}
