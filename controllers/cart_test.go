package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/mdrakibulislam10/bistro-boss-server/apperr"
	"github.com/mdrakibulislam10/bistro-boss-server/models"
)

func newCartController(carts *MockCartStore, users *MockUserStore) *CartController {
	return NewCartController(carts, users, zap.NewNop())
}

func TestCartListOwnCart(t *testing.T) {
	carts := new(MockCartStore)
	cc := newCartController(carts, new(MockUserStore))

	items := []models.CartItem{{Email: "a@x.com", Name: "Pizza", Price: 10}}
	carts.On("FindByEmail", mock.Anything, "a@x.com").Return(items, nil)

	req := authedRequest(http.MethodGet, "/carts?email=a@x.com", nil, "a@x.com")
	rec := httptest.NewRecorder()
	cc.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.CartItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, 1)
	assert.Equal(t, "Pizza", got[0].Name)
}

func TestCartListForeignEmailForbidden(t *testing.T) {
	carts := new(MockCartStore)
	cc := newCartController(carts, new(MockUserStore))

	req := authedRequest(http.MethodGet, "/carts?email=b@x.com", nil, "a@x.com")
	rec := httptest.NewRecorder()
	cc.List(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	carts.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}

func TestCartListBlankEmailYieldsEmptyList(t *testing.T) {
	cc := newCartController(new(MockCartStore), new(MockUserStore))

	req := authedRequest(http.MethodGet, "/carts", nil, "a@x.com")
	rec := httptest.NewRecorder()
	cc.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestCartAddScopedToCaller(t *testing.T) {
	carts := new(MockCartStore)
	cc := newCartController(carts, new(MockUserStore))

	carts.On("Insert", mock.Anything, mock.MatchedBy(func(i models.CartItem) bool {
		return i.Email == "a@x.com"
	})).Return(primitive.NewObjectID(), nil)

	item := models.CartItem{Email: "a@x.com", MenuItemID: primitive.NewObjectID(), Price: 12.5}
	req := authedRequest(http.MethodPost, "/carts", item, "a@x.com")
	rec := httptest.NewRecorder()
	cc.Add(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	carts.AssertExpectations(t)
}

func TestCartAddForeignEmailForbidden(t *testing.T) {
	carts := new(MockCartStore)
	cc := newCartController(carts, new(MockUserStore))

	item := models.CartItem{Email: "b@x.com"}
	req := authedRequest(http.MethodPost, "/carts", item, "a@x.com")
	rec := httptest.NewRecorder()
	cc.Add(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	carts.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestCartDeleteByOwner(t *testing.T) {
	carts := new(MockCartStore)
	cc := newCartController(carts, new(MockUserStore))

	id := primitive.NewObjectID()
	carts.On("FindByID", mock.Anything, id).Return(&models.CartItem{ID: id, Email: "a@x.com"}, nil)
	carts.On("DeleteByID", mock.Anything, id).Return(int64(1), nil)

	req := authedRequest(http.MethodDelete, "/carts/"+id.Hex(), nil, "a@x.com")
	req = mux.SetURLVars(req, map[string]string{"id": id.Hex()})
	rec := httptest.NewRecorder()
	cc.Delete(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	carts.AssertExpectations(t)
}

func TestCartDeleteForeignItemForbidden(t *testing.T) {
	carts := new(MockCartStore)
	users := new(MockUserStore)
	cc := newCartController(carts, users)

	id := primitive.NewObjectID()
	carts.On("FindByID", mock.Anything, id).Return(&models.CartItem{ID: id, Email: "b@x.com"}, nil)
	users.On("FindByEmail", mock.Anything, "a@x.com").
		Return(&models.User{Email: "a@x.com", Role: models.RoleStandard}, nil)

	req := authedRequest(http.MethodDelete, "/carts/"+id.Hex(), nil, "a@x.com")
	req = mux.SetURLVars(req, map[string]string{"id": id.Hex()})
	rec := httptest.NewRecorder()
	cc.Delete(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	carts.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
}

func TestCartDeleteForeignItemAllowedForAdmin(t *testing.T) {
	carts := new(MockCartStore)
	users := new(MockUserStore)
	cc := newCartController(carts, users)

	id := primitive.NewObjectID()
	carts.On("FindByID", mock.Anything, id).Return(&models.CartItem{ID: id, Email: "b@x.com"}, nil)
	users.On("FindByEmail", mock.Anything, "admin@x.com").
		Return(&models.User{Email: "admin@x.com", Role: models.RoleAdmin}, nil)
	carts.On("DeleteByID", mock.Anything, id).Return(int64(1), nil)

	req := authedRequest(http.MethodDelete, "/carts/"+id.Hex(), nil, "admin@x.com")
	req = mux.SetURLVars(req, map[string]string{"id": id.Hex()})
	rec := httptest.NewRecorder()
	cc.Delete(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	carts.AssertExpectations(t)
}

func TestCartDeleteMissingItem(t *testing.T) {
	carts := new(MockCartStore)
	cc := newCartController(carts, new(MockUserStore))

	id := primitive.NewObjectID()
	carts.On("FindByID", mock.Anything, id).Return(nil, apperr.ErrNotFound)

	req := authedRequest(http.MethodDelete, "/carts/"+id.Hex(), nil, "a@x.com")
	req = mux.SetURLVars(req, map[string]string{"id": id.Hex()})
	rec := httptest.NewRecorder()
	cc.Delete(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
