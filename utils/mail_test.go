package utils

import (
	"testing"
	"time"

	"github.com/Kariqs/bites-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReceipt() models.Receipt {
	return models.Receipt{
		ID:          "receipt_1",
		HotelName:   "Delicious Bites Restaurant",
		GeneratedAt: time.Date(2026, 3, 14, 19, 5, 0, 0, time.UTC),
		Order: &models.Order{
			ID:            "order_1",
			Total:         515,
			Status:        models.StatusPending,
			PaymentMethod: models.PaymentCash,
			Items: []models.OrderItem{{
				Product:  models.Product{ID: "1", Name: "Chicken Biryani", Price: 250},
				Quantity: 2,
				AddOns:   []models.SelectedAddOn{{AddOn: models.AddOn{ID: "1", Name: "Roti", Price: 15}, Quantity: 1}},
			}},
		},
	}
}

func TestNewReceiptEmailData(t *testing.T) {
	data := NewReceiptEmailData(sampleReceipt())

	assert.Equal(t, "order_1", data.OrderID)
	assert.Equal(t, "cash", data.PaymentMethod)
	assert.Equal(t, "14 Mar 2026 19:05", data.GeneratedAt)
	assert.Equal(t, "₹515.00", data.Total)
	require.Len(t, data.Lines, 1)
	assert.Equal(t, "₹500.00", data.Lines[0].Amount)
	assert.Equal(t, "₹515.00", data.Lines[0].Subtotal)
	require.Len(t, data.Lines[0].AddOns, 1)
	assert.Equal(t, "Roti", data.Lines[0].AddOns[0].Name)
	assert.Equal(t, "₹15.00", data.Lines[0].AddOns[0].Amount)
}

func TestRenderReceiptEmail(t *testing.T) {
	body, err := RenderReceiptEmail(sampleReceipt())
	require.NoError(t, err)

	assert.Contains(t, body, "Delicious Bites Restaurant")
	assert.Contains(t, body, "receipt_1")
	assert.Contains(t, body, "Chicken Biryani")
	assert.Contains(t, body, "Roti")
	assert.Contains(t, body, "₹515.00")
}
