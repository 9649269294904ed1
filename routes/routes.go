// routes/routes.go
package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mdrakibulislam10/bistro-boss-server/controllers"
	"github.com/mdrakibulislam10/bistro-boss-server/middleware"
)

// Register sets up all the routes for the application. Privileged routes are
// wrapped explicitly: authed runs token verification only, admin composes the
// full chain (verify token, then check the admin role).
func Register(
	router *mux.Router,
	authmw *middleware.Auth,
	userController *controllers.UserController,
	menuController *controllers.MenuController,
	reviewController *controllers.ReviewController,
	cartController *controllers.CartController,
	paymentController *controllers.PaymentController,
	statsController *controllers.StatsController,
) {
	authed := func(h http.HandlerFunc) http.Handler {
		return authmw.RequireAuth(h)
	}
	admin := func(h http.HandlerFunc) http.Handler {
		return authmw.RequireAuth(authmw.RequireAdmin(h))
	}

	router.HandleFunc("/", home).Methods("GET")

	// Token issuance
	router.HandleFunc("/jwt", userController.IssueToken).Methods("POST")

	// Users
	router.Handle("/users", admin(userController.List)).Methods("GET")
	router.HandleFunc("/users", userController.Register).Methods("POST")
	router.Handle("/users/admin/{email}", authed(userController.CheckAdmin)).Methods("GET")
	router.Handle("/users/admin/{id}", admin(userController.Promote)).Methods("PATCH")

	// Menu
	router.HandleFunc("/menu", menuController.List).Methods("GET")
	router.Handle("/menu", admin(menuController.Create)).Methods("POST")
	router.Handle("/menu/{id}", admin(menuController.Delete)).Methods("DELETE")

	// Reviews
	router.HandleFunc("/reviews", reviewController.List).Methods("GET")

	// Carts
	router.Handle("/carts", authed(cartController.List)).Methods("GET")
	router.Handle("/carts", authed(cartController.Add)).Methods("POST")
	router.Handle("/carts/{id}", authed(cartController.Delete)).Methods("DELETE")

	// Payments
	router.Handle("/create-payment-intent", authed(paymentController.CreateIntent)).Methods("POST")
	router.Handle("/payments", authed(paymentController.Settle)).Methods("POST")

	// Admin analytics
	router.Handle("/admin-stats", admin(statsController.AdminStats)).Methods("GET")
	router.Handle("/order-stats", admin(statsController.OrderStats)).Methods("GET")
}

func home(w http.ResponseWriter, _ *http.Request) {
	w.Write([]byte("boss is sitting"))
}
