package controllers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/mdrakibulislam10/bistro-boss-server/apperr"
	"github.com/mdrakibulislam10/bistro-boss-server/models"
)

// MenuStore is the slice of the menu collection the controller needs.
type MenuStore interface {
	All(ctx context.Context) ([]models.MenuItem, error)
	Insert(ctx context.Context, item models.MenuItem) (primitive.ObjectID, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// MenuController handles menu-related requests.
type MenuController struct {
	Menu MenuStore
	Log  *zap.Logger
}

func NewMenuController(menu MenuStore, log *zap.Logger) *MenuController {
	return &MenuController{Menu: menu, Log: log}
}

// List returns every menu item. Public.
func (mc *MenuController) List(w http.ResponseWriter, r *http.Request) {
	items, err := mc.Menu.All(r.Context())
	if err != nil {
		mc.Log.Error("listing menu failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, apperr.ErrStorage.Error())
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Create adds a new menu item. Admin only.
func (mc *MenuController) Create(w http.ResponseWriter, r *http.Request) {
	var item models.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}
	if item.Name == "" || item.Category == "" {
		writeError(w, http.StatusBadRequest, "name and category are required")
		return
	}

	id, err := mc.Menu.Insert(r.Context(), item)
	if err != nil {
		mc.Log.Error("menu insert failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, apperr.ErrStorage.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"insertedId": id})
}

// Delete removes a menu item by id. Admin only.
func (mc *MenuController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid menu item ID")
		return
	}

	deleted, err := mc.Menu.DeleteByID(r.Context(), id)
	if err != nil {
		mc.Log.Error("menu delete failed", zap.String("id", id.Hex()), zap.Error(err))
		writeError(w, http.StatusInternalServerError, apperr.ErrStorage.Error())
		return
	}
	if deleted == 0 {
		writeError(w, http.StatusNotFound, "menu item not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"deletedCount": deleted})
}
