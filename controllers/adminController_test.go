package controllers_test

import (
	"net/http"
	"testing"

	"github.com/Kariqs/bites-api/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type statsResponse struct {
	Stats models.Stats `json:"stats"`
}

func TestGetStats(t *testing.T) {
	app := newTestApp(t)

	var empty statsResponse
	decode(t, app.operator(t, http.MethodGet, "/admin/stats", nil), &empty)
	assert.Zero(t, empty.Stats.DailyEarnings)
	assert.Empty(t, empty.Stats.TopProducts)

	orderID := app.checkout(t).OrderID
	require.Equal(t, http.StatusOK, app.operator(t, http.MethodPost, "/orders/"+orderID+"/accept", nil).Code)

	var resp statsResponse
	decode(t, app.operator(t, http.MethodGet, "/admin/stats", nil), &resp)
	assert.GreaterOrEqual(t, resp.Stats.DailyEarnings, 515.0)
	assert.Equal(t, 1, resp.Stats.TotalOrdersToday)
	require.Len(t, resp.Stats.TopProducts, 1)
	assert.Equal(t, "p1", resp.Stats.TopProducts[0].Product.ID)
	assert.Equal(t, 2, resp.Stats.TopProducts[0].Sales)
}

func TestHotelSettings(t *testing.T) {
	app := newTestApp(t)
	before := app.checkout(t).Receipt

	require.Equal(t, http.StatusOK, app.operator(t, http.MethodPut, "/settings/hotel", gin.H{"hotelName": "Spice Route"}).Code)
	assert.Equal(t, http.StatusBadRequest, app.operator(t, http.MethodPut, "/settings/hotel", gin.H{"hotelName": ""}).Code)

	var settings struct {
		HotelName string `json:"hotelName"`
	}
	decode(t, app.operator(t, http.MethodGet, "/settings/hotel", nil), &settings)
	assert.Equal(t, "Spice Route", settings.HotelName)

	after := app.checkout(t).Receipt
	assert.Equal(t, "Spice Route", after.HotelName)

	stored, ok := app.store.Receipt(before.ID)
	require.True(t, ok)
	assert.Equal(t, "Test Kitchen", stored.HotelName)
}
