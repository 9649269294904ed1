package controllers

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/mdrakibulislam10/bistro-boss-server/apperr"
	"github.com/mdrakibulislam10/bistro-boss-server/middleware"
	"github.com/mdrakibulislam10/bistro-boss-server/models"
)

// PaymentStore is the slice of the payments collection settlement needs.
type PaymentStore interface {
	Insert(ctx context.Context, payment models.Payment) (primitive.ObjectID, error)
	MarkUnreconciled(ctx context.Context, id primitive.ObjectID) error
}

// CartReconciler clears the cart items a payment references.
type CartReconciler interface {
	DeleteByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error)
}

// IntentCreator is the card-payment provider: given an amount in minor units
// and a currency it returns a client secret for charging.
type IntentCreator interface {
	CreatePaymentIntent(amount int64, currency string) (string, error)
}

// Mailer sends the post-settlement confirmation. Optional; a nil Mailer
// disables confirmation mail.
type Mailer interface {
	SendPaymentConfirmation(toEmail, transactionID string, amount float64) error
}

// PaymentController handles payment-intent creation and settlement.
type PaymentController struct {
	Payments PaymentStore
	Carts    CartReconciler
	Intents  IntentCreator
	Email    Mailer
	Log      *zap.Logger
}

func NewPaymentController(payments PaymentStore, carts CartReconciler, intents IntentCreator, email Mailer, log *zap.Logger) *PaymentController {
	return &PaymentController{Payments: payments, Carts: carts, Intents: intents, Email: email, Log: log}
}

// CreateIntent asks the provider for a card payment intent covering the
// posted price and returns the client secret.
func (pc *PaymentController) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Price float64 `json:"price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Price <= 0 {
		writeError(w, http.StatusBadRequest, "a positive price is required")
		return
	}

	// Stripe charges in minor units: 1 usd = 100 cents.
	amount := int64(math.Round(body.Price * 100))

	clientSecret, err := pc.Intents.CreatePaymentIntent(amount, "usd")
	if err != nil {
		pc.Log.Error("payment intent creation failed", zap.Float64("price", body.Price), zap.Error(err))
		writeError(w, http.StatusBadGateway, apperr.ErrUpstreamPayment.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"clientSecret": clientSecret})
}

// settlementRequest is the caller-facing payment shape; ids arrive as hex
// strings and are resolved to ObjectIDs before persisting.
type settlementRequest struct {
	Email         string   `json:"email"`
	Price         float64  `json:"price"`
	PaymentMethod string   `json:"payment_method"`
	TransactionID string   `json:"transaction_id"`
	CartItemIDs   []string `json:"cartItems"`
	MenuItemIDs   []string `json:"menuItems"`
}

// Settle records a completed payment and clears the cart items it references.
// The payment insert happens first; a failed or short cart deletion afterwards
// marks the payment for reconciliation and is reported as a partial
// settlement rather than success.
func (pc *PaymentController) Settle(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, apperr.ErrUnauthenticated.Error())
		return
	}

	var req settlementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}
	if req.Email != claims.Email {
		writeError(w, http.StatusForbidden, apperr.ErrForbidden.Error())
		return
	}

	cartItemIDs, err := toObjectIDs(req.CartItemIDs)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid cart item ID")
		return
	}
	menuItemIDs, err := toObjectIDs(req.MenuItemIDs)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid menu item ID")
		return
	}

	payment := models.Payment{
		Email:         req.Email,
		Price:         req.Price,
		PaymentMethod: req.PaymentMethod,
		TransactionID: req.TransactionID,
		CartItemIDs:   cartItemIDs,
		MenuItemIDs:   menuItemIDs,
		CreatedAt:     time.Now().UTC(),
	}

	insertedID, err := pc.Payments.Insert(r.Context(), payment)
	if err != nil {
		pc.Log.Error("payment insert failed", zap.String("email", req.Email), zap.Error(err))
		writeError(w, http.StatusInternalServerError, apperr.ErrStorage.Error())
		return
	}

	deleted, err := pc.Carts.DeleteByIDs(r.Context(), cartItemIDs)
	if err != nil || deleted < int64(len(cartItemIDs)) {
		pc.Log.Error("cart reconciliation incomplete",
			zap.String("payment_id", insertedID.Hex()),
			zap.Int64("deleted", deleted),
			zap.Int("expected", len(cartItemIDs)),
			zap.Error(err))
		if markErr := pc.Payments.MarkUnreconciled(r.Context(), insertedID); markErr != nil {
			pc.Log.Error("marking payment unreconciled failed",
				zap.String("payment_id", insertedID.Hex()), zap.Error(markErr))
		}
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"error":        true,
			"message":      apperr.ErrPartialSettlement.Error(),
			"insertedId":   insertedID,
			"deletedCount": deleted,
		})
		return
	}

	if pc.Email != nil {
		go func(email, txID string, amount float64) {
			if err := pc.Email.SendPaymentConfirmation(email, txID, amount); err != nil {
				pc.Log.Warn("payment confirmation mail failed", zap.String("email", email), zap.Error(err))
			}
		}(req.Email, req.TransactionID, req.Price)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"insertedId":   insertedID,
		"deletedCount": deleted,
	})
}

func toObjectIDs(hex []string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(hex))
	for _, h := range hex {
		id, err := primitive.ObjectIDFromHex(h)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
