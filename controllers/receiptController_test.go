package controllers_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/Kariqs/bites-api/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReceipt(t *testing.T) {
	app := newTestApp(t)
	paid := app.checkout(t)

	var again struct {
		Receipt models.Receipt `json:"receipt"`
	}
	for i := 0; i < 2; i++ {
		rr := app.operator(t, http.MethodPost, "/orders/"+paid.OrderID+"/receipt", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		decode(t, rr, &again)
		assert.Equal(t, paid.Receipt.ID, again.Receipt.ID)
	}

	var list struct {
		Receipts []models.Receipt `json:"receipts"`
	}
	decode(t, app.operator(t, http.MethodGet, "/receipts", nil), &list)
	assert.Len(t, list.Receipts, 1)

	var got struct {
		Receipt models.Receipt `json:"receipt"`
	}
	rr := app.do(t, http.MethodGet, "/receipts/"+paid.Receipt.ID, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	decode(t, rr, &got)
	assert.Equal(t, paid.Receipt.ID, got.Receipt.ID)
}

func TestReprintedReceiptCountsOnceInStats(t *testing.T) {
	app := newTestApp(t)
	orderID := app.checkout(t).OrderID

	app.operator(t, http.MethodPost, "/orders/"+orderID+"/receipt", nil)
	app.operator(t, http.MethodPost, "/orders/"+orderID+"/receipt", nil)
	require.Equal(t, http.StatusOK, app.operator(t, http.MethodPost, "/orders/"+orderID+"/accept", nil).Code)

	stats := app.store.Stats()
	assert.Equal(t, 515.0, stats.DailyEarnings)
	assert.Equal(t, 1, stats.TotalOrdersToday)
	require.Len(t, stats.TopProducts, 1)
	assert.Equal(t, 2, stats.TopProducts[0].Sales)
}

func TestCreateReceiptForUnbilledOrder(t *testing.T) {
	app := newTestApp(t)
	orderID := app.store.PlaceOrder(models.PaymentCash)

	rr := app.operator(t, http.MethodPost, "/orders/"+orderID+"/receipt", nil)
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Len(t, app.store.Receipts(), 1)
}

func TestCreateReceiptUnknownOrder(t *testing.T) {
	app := newTestApp(t)

	rr := app.operator(t, http.MethodPost, "/orders/order_missing/receipt", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Empty(t, app.store.Receipts())
	assert.Equal(t, http.StatusNotFound, app.do(t, http.MethodGet, "/receipts/receipt_missing", nil).Code)
}

func TestEmailReceipt(t *testing.T) {
	app := newTestApp(t)
	receipt := app.checkout(t).Receipt

	var sentTo, sentSubject, sentBody string
	app.controller.SendEmail = func(to, subject, body string) error {
		sentTo, sentSubject, sentBody = to, subject, body
		return nil
	}

	rr := app.do(t, http.MethodPost, "/receipts/"+receipt.ID+"/email", gin.H{"email": "guest@example.com"})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, "guest@example.com", sentTo)
	assert.Equal(t, "Test Kitchen receipt", sentSubject)
	assert.Contains(t, sentBody, "Chicken Biryani")
	assert.Contains(t, sentBody, "₹515.00")

	assert.Equal(t, http.StatusBadRequest, app.do(t, http.MethodPost, "/receipts/"+receipt.ID+"/email", gin.H{"email": "not-an-email"}).Code)
	assert.Equal(t, http.StatusNotFound, app.do(t, http.MethodPost, "/receipts/receipt_missing/email", gin.H{"email": "guest@example.com"}).Code)

	app.controller.SendEmail = func(string, string, string) error { return errors.New("smtp down") }
	assert.Equal(t, http.StatusBadGateway, app.do(t, http.MethodPost, "/receipts/"+receipt.ID+"/email", gin.H{"email": "guest@example.com"}).Code)
}
