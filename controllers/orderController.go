package controllers

import (
	"errors"
	"net/http"

	"github.com/Kariqs/bites-api/models"
	"github.com/Kariqs/bites-api/store"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type checkoutRequest struct {
	PaymentMethod models.PaymentMethod `json:"paymentMethod" binding:"required,oneof=cash online"`
}

// Checkout takes payment for the cart: the cart becomes a pending order in the
// kitchen queue and a receipt is generated for it.
func (c *Controller) Checkout(ctx *gin.Context) {
	var req checkoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	receipt, err := c.Store.Checkout(req.PaymentMethod)
	if err != nil {
		if errors.Is(err, store.ErrEmptyOrder) {
			sendErrorResponse(ctx, http.StatusBadRequest, "No items in your order")
		} else {
			zap.S().Errorw("checkout failed", "error", err)
			respondWithError(ctx, http.StatusInternalServerError, "Failed to place order", err)
		}
		return
	}

	zap.S().Infow("order placed", "order", receipt.Order.ID, "total", receipt.Order.Total, "paymentMethod", req.PaymentMethod)
	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": "Payment successful. Your order has been sent to the kitchen.",
		"orderId": receipt.Order.ID,
		"receipt": receipt,
	})
}

func (c *Controller) GetOrders(ctx *gin.Context) {
	sendJSONResponse(ctx, http.StatusOK, gin.H{"orders": c.Store.Orders()})
}

func (c *Controller) GetOrder(ctx *gin.Context) {
	order, ok := c.Store.Order(ctx.Param("id"))
	if !ok {
		sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"order": order})
}

// GetKitchenOrders lists the chef's queue: orders waiting to be accepted and
// orders being prepared.
func (c *Controller) GetKitchenOrders(ctx *gin.Context) {
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"pending":  c.Store.OrdersByStatus(models.StatusPending),
		"accepted": c.Store.OrdersByStatus(models.StatusAccepted),
	})
}

func (c *Controller) AcceptOrder(ctx *gin.Context) {
	orderID := ctx.Param("id")
	if !c.Store.AcceptOrder(orderID) {
		sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		return
	}
	zap.S().Infow("order accepted", "order", orderID)
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Order has been accepted and is now in preparation."})
}

func (c *Controller) CompleteOrder(ctx *gin.Context) {
	orderID := ctx.Param("id")
	if !c.Store.CompleteOrder(orderID) {
		sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		return
	}
	zap.S().Infow("order completed", "order", orderID)
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Order has been marked as completed."})
}
