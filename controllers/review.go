package controllers

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/mdrakibulislam10/bistro-boss-server/apperr"
	"github.com/mdrakibulislam10/bistro-boss-server/models"
)

// ReviewStore is the slice of the reviews collection the controller needs.
type ReviewStore interface {
	All(ctx context.Context) ([]models.Review, error)
}

// ReviewController handles review listing.
type ReviewController struct {
	Reviews ReviewStore
	Log     *zap.Logger
}

func NewReviewController(reviews ReviewStore, log *zap.Logger) *ReviewController {
	return &ReviewController{Reviews: reviews, Log: log}
}

// List returns every review. Public.
func (rc *ReviewController) List(w http.ResponseWriter, r *http.Request) {
	reviews, err := rc.Reviews.All(r.Context())
	if err != nil {
		rc.Log.Error("listing reviews failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, apperr.ErrStorage.Error())
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}
