package controllers_test

import (
	"net/http"
	"testing"

	"github.com/Kariqs/bites-api/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type kitchenResponse struct {
	Pending  []models.Order `json:"pending"`
	Accepted []models.Order `json:"accepted"`
}

func TestCheckout(t *testing.T) {
	app := newTestApp(t)
	resp := app.checkout(t)

	assert.NotEmpty(t, resp.OrderID)
	require.NotNil(t, resp.Receipt.Order)
	assert.Equal(t, resp.OrderID, resp.Receipt.Order.ID)
	assert.Equal(t, 515.0, resp.Receipt.Order.Total)
	assert.Equal(t, models.StatusPending, resp.Receipt.Order.Status)
	assert.Equal(t, models.PaymentCash, resp.Receipt.Order.PaymentMethod)
	assert.Equal(t, "Test Kitchen", resp.Receipt.HotelName)
	assert.Empty(t, app.store.CurrentOrder())
	assert.Len(t, app.store.Receipts(), 1)
}

func TestCheckoutRejectsInvalidRequests(t *testing.T) {
	app := newTestApp(t)

	assert.Equal(t, http.StatusBadRequest, app.do(t, http.MethodPost, "/checkout", gin.H{"paymentMethod": "cash"}).Code)

	app.do(t, http.MethodPost, "/cart", biryaniWithRoti())
	assert.Equal(t, http.StatusBadRequest, app.do(t, http.MethodPost, "/checkout", gin.H{"paymentMethod": "card"}).Code)
	assert.Equal(t, http.StatusBadRequest, app.do(t, http.MethodPost, "/checkout", gin.H{}).Code)
	assert.Empty(t, app.store.Orders())
	assert.Len(t, app.store.CurrentOrder(), 1)
}

func TestKitchenFlow(t *testing.T) {
	app := newTestApp(t)
	first := app.checkout(t).OrderID
	second := app.checkout(t).OrderID

	var queue kitchenResponse
	decode(t, app.operator(t, http.MethodGet, "/kitchen/orders", nil), &queue)
	assert.Len(t, queue.Pending, 2)
	assert.Empty(t, queue.Accepted)

	require.Equal(t, http.StatusOK, app.operator(t, http.MethodPost, "/orders/"+first+"/accept", nil).Code)
	require.Equal(t, http.StatusOK, app.operator(t, http.MethodPost, "/orders/"+first+"/accept", nil).Code)

	decode(t, app.operator(t, http.MethodGet, "/kitchen/orders", nil), &queue)
	require.Len(t, queue.Pending, 1)
	assert.Equal(t, second, queue.Pending[0].ID)
	require.Len(t, queue.Accepted, 1)
	assert.Equal(t, first, queue.Accepted[0].ID)

	require.Equal(t, http.StatusOK, app.operator(t, http.MethodPost, "/orders/"+first+"/complete", nil).Code)
	require.Equal(t, http.StatusOK, app.operator(t, http.MethodPost, "/orders/"+second+"/complete", nil).Code)

	var orders struct {
		Orders []models.Order `json:"orders"`
	}
	decode(t, app.operator(t, http.MethodGet, "/orders", nil), &orders)
	assert.Empty(t, orders.Orders)

	assert.Equal(t, http.StatusNotFound, app.operator(t, http.MethodPost, "/orders/"+first+"/complete", nil).Code)
	assert.Equal(t, http.StatusNotFound, app.operator(t, http.MethodPost, "/orders/order_missing/accept", nil).Code)
	assert.Equal(t, http.StatusNotFound, app.operator(t, http.MethodGet, "/orders/"+first, nil).Code)
}
