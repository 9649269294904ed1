// main.go
package main

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/mdrakibulislam10/bistro-boss-server/config"
	"github.com/mdrakibulislam10/bistro-boss-server/controllers"
	"github.com/mdrakibulislam10/bistro-boss-server/middleware"
	"github.com/mdrakibulislam10/bistro-boss-server/routes"
	"github.com/mdrakibulislam10/bistro-boss-server/store"
	"github.com/mdrakibulislam10/bistro-boss-server/utils"

	"github.com/mdrakibulislam10/bistro-boss-server/auth"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("configuration error", zap.Error(err))
	}

	// Connect to MongoDB
	st, err := store.Connect(context.Background(), cfg.Mongo.URI, cfg.Mongo.DB, logger)
	if err != nil {
		logger.Fatal("store connection failed", zap.Error(err))
	}
	defer func() {
		if err := st.Close(); err != nil {
			logger.Error("store close failed", zap.Error(err))
		}
	}()

	tokens := auth.NewTokenService(cfg.JWT.Secret, cfg.JWT.TTL)
	authmw := middleware.NewAuth(tokens, st.Users, logger)
	stripeService := utils.NewStripeService(cfg.Stripe.SecretKey)

	var mailer controllers.Mailer
	if cfg.SendGrid.APIKey != "" {
		mailer = utils.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.Sender)
	} else {
		logger.Warn("SENDGRID_API_KEY not set; payment confirmation mail disabled")
	}

	// Initialize controllers
	userController := controllers.NewUserController(st.Users, tokens, logger)
	menuController := controllers.NewMenuController(st.Menu, logger)
	reviewController := controllers.NewReviewController(st.Reviews, logger)
	cartController := controllers.NewCartController(st.Carts, st.Users, logger)
	paymentController := controllers.NewPaymentController(st.Payments, st.Carts, stripeService, mailer, logger)
	statsController := controllers.NewStatsController(st.Users, st.Menu, st.Payments, logger)

	// Set up the router
	router := mux.NewRouter()
	router.Use(middleware.CORS)
	routes.Register(router, authmw,
		userController, menuController, reviewController,
		cartController, paymentController, statsController)

	logger.Info("bistro boss is sitting", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
