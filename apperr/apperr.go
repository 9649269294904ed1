// Package apperr defines the error taxonomy shared across the server.
// Stores and services return these sentinels (usually wrapped); handlers
// translate them to HTTP status codes at the edge.
package apperr

import "errors"

var (
	// ErrUnauthenticated means the bearer credential is missing, malformed,
	// expired, or carries an invalid signature.
	ErrUnauthenticated = errors.New("unauthorized access")

	// ErrForbidden means the caller is authenticated but lacks the required
	// role, or is acting on another identity's resource.
	ErrForbidden = errors.New("forbidden access")

	// ErrNotFound means a referenced document does not exist.
	ErrNotFound = errors.New("not found")

	// ErrStorage means an underlying collection operation failed.
	ErrStorage = errors.New("storage error")

	// ErrPartialSettlement means a payment was recorded but the cart
	// reconciliation deleted fewer items than the payment references.
	ErrPartialSettlement = errors.New("partial settlement")

	// ErrUpstreamPayment means the card-payment provider call failed.
	ErrUpstreamPayment = errors.New("payment provider error")
)
