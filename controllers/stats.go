package controllers

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/mdrakibulislam10/bistro-boss-server/apperr"
	"github.com/mdrakibulislam10/bistro-boss-server/models"
)

// Counter estimates a collection's cardinality.
type Counter interface {
	EstimatedCount(ctx context.Context) (int64, error)
}

// PaymentAnalytics is the read-only analytics surface of the payments
// collection.
type PaymentAnalytics interface {
	EstimatedCount(ctx context.Context) (int64, error)
	TotalRevenue(ctx context.Context) (float64, error)
	OrderStatsByCategory(ctx context.Context) ([]models.OrderStatRow, error)
}

// StatsController serves the admin dashboard aggregations. Both endpoints
// are admin only.
type StatsController struct {
	Users    Counter
	Menu     Counter
	Payments PaymentAnalytics
	Log      *zap.Logger
}

func NewStatsController(users, menu Counter, payments PaymentAnalytics, log *zap.Logger) *StatsController {
	return &StatsController{Users: users, Menu: menu, Payments: payments, Log: log}
}

// AdminStats returns collection counts and total revenue.
func (sc *StatsController) AdminStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := sc.Users.EstimatedCount(ctx)
	if err != nil {
		sc.fail(w, "counting users failed", err)
		return
	}
	products, err := sc.Menu.EstimatedCount(ctx)
	if err != nil {
		sc.fail(w, "counting menu failed", err)
		return
	}
	orders, err := sc.Payments.EstimatedCount(ctx)
	if err != nil {
		sc.fail(w, "counting payments failed", err)
		return
	}
	revenue, err := sc.Payments.TotalRevenue(ctx)
	if err != nil {
		sc.fail(w, "revenue aggregation failed", err)
		return
	}

	writeJSON(w, http.StatusOK, models.AdminStats{
		Revenue:  revenue,
		Users:    users,
		Products: products,
		Orders:   orders,
	})
}

// OrderStats returns the per-category order statistics.
func (sc *StatsController) OrderStats(w http.ResponseWriter, r *http.Request) {
	rows, err := sc.Payments.OrderStatsByCategory(r.Context())
	if err != nil {
		sc.fail(w, "order-stats aggregation failed", err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (sc *StatsController) fail(w http.ResponseWriter, msg string, err error) {
	sc.Log.Error(msg, zap.Error(err))
	writeError(w, http.StatusInternalServerError, apperr.ErrStorage.Error())
}
