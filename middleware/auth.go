package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/mdrakibulislam10/bistro-boss-server/apperr"
	"github.com/mdrakibulislam10/bistro-boss-server/auth"
	"github.com/mdrakibulislam10/bistro-boss-server/models"
)

// UserFinder is the slice of the user store the admin gate needs.
type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// Key type for context
type contextKey string

const claimsContextKey = contextKey("claims")

// Auth composes the two authorization stages. RequireAuth must run before
// RequireAdmin; privileged routes wrap both explicitly at registration time.
type Auth struct {
	Tokens *auth.TokenService
	Users  UserFinder
	Log    *zap.Logger
}

func NewAuth(tokens *auth.TokenService, users UserFinder, log *zap.Logger) *Auth {
	return &Auth{Tokens: tokens, Users: users, Log: log}
}

// RequireAuth verifies the bearer token and attaches the claims to the
// request context for downstream stages and handlers.
func (a *Auth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := a.Tokens.FromHeader(r.Header.Get("Authorization"))
		if err != nil {
			writeError(w, http.StatusUnauthorized, apperr.ErrUnauthenticated.Error())
			return
		}

		ctx := context.WithValue(r.Context(), claimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin looks up the verified caller and rejects unless their role is
// admin. An unknown email is rejected the same way as a standard role.
func (a *Auth) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFrom(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, apperr.ErrUnauthenticated.Error())
			return
		}

		user, err := a.Users.FindByEmail(r.Context(), claims.Email)
		if err != nil {
			if !errors.Is(err, apperr.ErrNotFound) {
				a.Log.Error("admin role lookup failed", zap.String("email", claims.Email), zap.Error(err))
				writeError(w, http.StatusInternalServerError, apperr.ErrStorage.Error())
				return
			}
			writeError(w, http.StatusForbidden, apperr.ErrForbidden.Error())
			return
		}

		if user.Role != models.RoleAdmin {
			writeError(w, http.StatusForbidden, apperr.ErrForbidden.Error())
			return
		}

		next.ServeHTTP(w, r)
	})
}

// ClaimsFrom returns the verified identity claims attached by RequireAuth.
func ClaimsFrom(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(*auth.Claims)
	return claims, ok
}

// WithClaims returns a context carrying the given claims. Used by tests that
// invoke handlers without the middleware chain.
func WithClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{"error": true, "message": message})
}
