package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mdrakibulislam10/bistro-boss-server/models"
)

func newStatsController(users, menu *MockCounter, payments *MockPaymentAnalytics) *StatsController {
	return NewStatsController(users, menu, payments, zap.NewNop())
}

func TestAdminStats(t *testing.T) {
	users := new(MockCounter)
	menu := new(MockCounter)
	payments := new(MockPaymentAnalytics)
	sc := newStatsController(users, menu, payments)

	users.On("EstimatedCount", mock.Anything).Return(int64(12), nil)
	menu.On("EstimatedCount", mock.Anything).Return(int64(40), nil)
	payments.On("EstimatedCount", mock.Anything).Return(int64(7), nil)
	payments.On("TotalRevenue", mock.Anything).Return(321.5, nil)

	req := httptest.NewRequest(http.MethodGet, "/admin-stats", nil)
	rec := httptest.NewRecorder()
	sc.AdminStats(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.AdminStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, models.AdminStats{Revenue: 321.5, Users: 12, Products: 40, Orders: 7}, got)
}

func TestAdminStatsEmptyPaymentsYieldZeroRevenue(t *testing.T) {
	users := new(MockCounter)
	menu := new(MockCounter)
	payments := new(MockPaymentAnalytics)
	sc := newStatsController(users, menu, payments)

	users.On("EstimatedCount", mock.Anything).Return(int64(0), nil)
	menu.On("EstimatedCount", mock.Anything).Return(int64(0), nil)
	payments.On("EstimatedCount", mock.Anything).Return(int64(0), nil)
	payments.On("TotalRevenue", mock.Anything).Return(0.0, nil)

	req := httptest.NewRequest(http.MethodGet, "/admin-stats", nil)
	rec := httptest.NewRecorder()
	sc.AdminStats(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.AdminStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Zero(t, got.Revenue)
	assert.Zero(t, got.Orders)
}

func TestAdminStatsStorageFailure(t *testing.T) {
	users := new(MockCounter)
	sc := newStatsController(users, new(MockCounter), new(MockPaymentAnalytics))

	users.On("EstimatedCount", mock.Anything).Return(int64(0), errors.New("down"))

	req := httptest.NewRequest(http.MethodGet, "/admin-stats", nil)
	rec := httptest.NewRecorder()
	sc.AdminStats(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestOrderStats(t *testing.T) {
	payments := new(MockPaymentAnalytics)
	sc := newStatsController(new(MockCounter), new(MockCounter), payments)

	rows := []models.OrderStatRow{
		{Category: "pizza", Count: 2, Total: 22.00},
		{Category: "drink", Count: 1, Total: 5.00},
	}
	payments.On("OrderStatsByCategory", mock.Anything).Return(rows, nil)

	req := httptest.NewRequest(http.MethodGet, "/order-stats", nil)
	rec := httptest.NewRecorder()
	sc.OrderStats(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.OrderStatRow
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.ElementsMatch(t, rows, got)
}

func TestOrderStatsStorageFailure(t *testing.T) {
	payments := new(MockPaymentAnalytics)
	sc := newStatsController(new(MockCounter), new(MockCounter), payments)

	payments.On("OrderStatsByCategory", mock.Anything).Return(nil, errors.New("down"))

	req := httptest.NewRequest(http.MethodGet, "/order-stats", nil)
	rec := httptest.NewRecorder()
	sc.OrderStats(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
