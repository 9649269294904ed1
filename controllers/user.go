package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/mdrakibulislam10/bistro-boss-server/apperr"
	"github.com/mdrakibulislam10/bistro-boss-server/auth"
	"github.com/mdrakibulislam10/bistro-boss-server/middleware"
	"github.com/mdrakibulislam10/bistro-boss-server/models"
)

// UserStore is the slice of the user collection the controller needs.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, user models.User) (primitive.ObjectID, error)
	PromoteToAdmin(ctx context.Context, id primitive.ObjectID) error
	All(ctx context.Context) ([]models.User, error)
}

// UserController handles token issuance and user-related requests.
type UserController struct {
	Users  UserStore
	Tokens *auth.TokenService
	Log    *zap.Logger
}

func NewUserController(users UserStore, tokens *auth.TokenService, log *zap.Logger) *UserController {
	return &UserController{Users: users, Tokens: tokens, Log: log}
}

// IssueToken signs a short-lived bearer token for the posted email.
func (uc *UserController) IssueToken(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Email == "" {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}

	token, err := uc.Tokens.Sign(body.Email)
	if err != nil {
		uc.Log.Error("token signing failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "error generating token")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// List returns every user. Admin only.
func (uc *UserController) List(w http.ResponseWriter, r *http.Request) {
	users, err := uc.Users.All(r.Context())
	if err != nil {
		uc.Log.Error("listing users failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, apperr.ErrStorage.Error())
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// Register creates a user unless the email already exists. Idempotent on
// email: a duplicate registration reports "user already exists" and creates
// nothing.
func (uc *UserController) Register(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil || user.Email == "" {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}

	_, err := uc.Users.FindByEmail(r.Context(), user.Email)
	if err == nil {
		writeJSON(w, http.StatusOK, map[string]string{"message": "user already exists"})
		return
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		uc.Log.Error("user lookup failed", zap.String("email", user.Email), zap.Error(err))
		writeError(w, http.StatusInternalServerError, apperr.ErrStorage.Error())
		return
	}

	user.Role = models.RoleStandard
	user.CreatedAt = time.Now().UTC()

	id, err := uc.Users.Insert(r.Context(), user)
	if err != nil {
		uc.Log.Error("user insert failed", zap.String("email", user.Email), zap.Error(err))
		writeError(w, http.StatusInternalServerError, apperr.ErrStorage.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"insertedId": id})
}

// CheckAdmin answers whether the caller is an admin. Asking about any email
// other than the caller's own answers admin:false rather than erroring, so
// role information about other users never leaks.
func (uc *UserController) CheckAdmin(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, apperr.ErrUnauthenticated.Error())
		return
	}

	email := mux.Vars(r)["email"]
	if email != claims.Email {
		writeJSON(w, http.StatusOK, map[string]bool{"admin": false})
		return
	}

	user, err := uc.Users.FindByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusOK, map[string]bool{"admin": false})
			return
		}
		uc.Log.Error("user lookup failed", zap.String("email", email), zap.Error(err))
		writeError(w, http.StatusInternalServerError, apperr.ErrStorage.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"admin": user.Role == models.RoleAdmin})
}

// Promote elevates a user to admin. Admin only.
func (uc *UserController) Promote(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	if err := uc.Users.PromoteToAdmin(r.Context(), id); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}
		uc.Log.Error("promotion failed", zap.String("id", id.Hex()), zap.Error(err))
		writeError(w, http.StatusInternalServerError, apperr.ErrStorage.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"modifiedCount": 1})
}
