package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/mdrakibulislam10/bistro-boss-server/apperr"
	"github.com/mdrakibulislam10/bistro-boss-server/middleware"
	"github.com/mdrakibulislam10/bistro-boss-server/models"
)

// CartStore is the slice of the carts collection the controller needs.
type CartStore interface {
	FindByEmail(ctx context.Context, email string) ([]models.CartItem, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.CartItem, error)
	Insert(ctx context.Context, item models.CartItem) (primitive.ObjectID, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// RoleFinder resolves a caller's role for the owner-or-admin check on cart
// deletion.
type RoleFinder interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// CartController handles cart-related requests. Every operation is scoped to
// the verified caller's own cart.
type CartController struct {
	Carts CartStore
	Users RoleFinder
	Log   *zap.Logger
}

func NewCartController(carts CartStore, users RoleFinder, log *zap.Logger) *CartController {
	return &CartController{Carts: carts, Users: users, Log: log}
}

// List returns the cart items owned by the email in the query string. The
// email must match the verified caller; a blank email yields an empty list.
func (cc *CartController) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, apperr.ErrUnauthenticated.Error())
		return
	}

	email := r.URL.Query().Get("email")
	if email == "" {
		writeJSON(w, http.StatusOK, []models.CartItem{})
		return
	}
	if email != claims.Email {
		writeError(w, http.StatusForbidden, apperr.ErrForbidden.Error())
		return
	}

	items, err := cc.Carts.FindByEmail(r.Context(), email)
	if err != nil {
		cc.Log.Error("listing cart failed", zap.String("email", email), zap.Error(err))
		writeError(w, http.StatusInternalServerError, apperr.ErrStorage.Error())
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// Add puts a menu item into the caller's own cart.
func (cc *CartController) Add(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, apperr.ErrUnauthenticated.Error())
		return
	}

	var item models.CartItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}
	if item.Email != claims.Email {
		writeError(w, http.StatusForbidden, apperr.ErrForbidden.Error())
		return
	}

	id, err := cc.Carts.Insert(r.Context(), item)
	if err != nil {
		cc.Log.Error("cart insert failed", zap.String("email", item.Email), zap.Error(err))
		writeError(w, http.StatusInternalServerError, apperr.ErrStorage.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"insertedId": id})
}

// Delete removes a single cart item. The caller must own the item or hold the
// admin role.
func (cc *CartController) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, apperr.ErrUnauthenticated.Error())
		return
	}

	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid cart item ID")
		return
	}

	item, err := cc.Carts.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeError(w, http.StatusNotFound, "cart item not found")
			return
		}
		cc.Log.Error("cart lookup failed", zap.String("id", id.Hex()), zap.Error(err))
		writeError(w, http.StatusInternalServerError, apperr.ErrStorage.Error())
		return
	}

	if item.Email != claims.Email && !cc.isAdmin(r.Context(), claims.Email) {
		writeError(w, http.StatusForbidden, apperr.ErrForbidden.Error())
		return
	}

	deleted, err := cc.Carts.DeleteByID(r.Context(), id)
	if err != nil {
		cc.Log.Error("cart delete failed", zap.String("id", id.Hex()), zap.Error(err))
		writeError(w, http.StatusInternalServerError, apperr.ErrStorage.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"deletedCount": deleted})
}

func (cc *CartController) isAdmin(ctx context.Context, email string) bool {
	user, err := cc.Users.FindByEmail(ctx, email)
	return err == nil && user.Role == models.RoleAdmin
}
