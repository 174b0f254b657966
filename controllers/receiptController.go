package controllers

import (
	"errors"
	"net/http"

	"github.com/Kariqs/bites-api/store"
	"github.com/Kariqs/bites-api/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CreateReceipt reprints the receipt of an active order. An order that was
// already paid for keeps its single receipt.
func (c *Controller) CreateReceipt(ctx *gin.Context) {
	receipt, created, err := c.Store.ReceiptForOrder(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Order not found", err)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to generate receipt", err)
		}
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	sendJSONResponse(ctx, status, gin.H{"receipt": receipt})
}

func (c *Controller) GetReceipts(ctx *gin.Context) {
	sendJSONResponse(ctx, http.StatusOK, gin.H{"receipts": c.Store.Receipts()})
}

func (c *Controller) GetReceipt(ctx *gin.Context) {
	receipt, ok := c.Store.Receipt(ctx.Param("id"))
	if !ok {
		sendErrorResponse(ctx, http.StatusNotFound, "Receipt not found")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"receipt": receipt})
}

func (c *Controller) EmailReceipt(ctx *gin.Context) {
	var body struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	receipt, ok := c.Store.Receipt(ctx.Param("id"))
	if !ok {
		sendErrorResponse(ctx, http.StatusNotFound, "Receipt not found")
		return
	}

	html, err := utils.RenderReceiptEmail(receipt)
	if err != nil {
		zap.S().Errorw("receipt email rendering failed", "receipt", receipt.ID, "error", err)
		respondWithError(ctx, http.StatusInternalServerError, "Failed to render receipt", err)
		return
	}

	if err := c.SendEmail(body.Email, receipt.HotelName+" receipt", html); err != nil {
		zap.S().Errorw("error sending receipt email", "receipt", receipt.ID, "error", err)
		sendErrorResponse(ctx, http.StatusBadGateway, "Failed to send receipt email")
		return
	}

	zap.S().Infow("receipt email sent", "receipt", receipt.ID, "to", body.Email)
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Receipt sent to " + body.Email})
}
