package utils

import (
	"fmt"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// StripeService creates card payment intents against the Stripe API.
type StripeService struct {
	api *client.API
}

// NewStripeService builds a StripeService for the given secret key.
func NewStripeService(secretKey string) *StripeService {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeService{api: api}
}

// CreatePaymentIntent creates a card payment intent for the given amount in
// minor units and returns the client secret the frontend charges with.
func (s *StripeService) CreatePaymentIntent(amount int64, currency string) (string, error) {
	intent, err := s.api.PaymentIntents.New(&stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}
	return intent.ClientSecret, nil
}
