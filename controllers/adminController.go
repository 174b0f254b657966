package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (c *Controller) GetStats(ctx *gin.Context) {
	sendJSONResponse(ctx, http.StatusOK, gin.H{"stats": c.Store.Stats()})
}

func (c *Controller) GetHotelSettings(ctx *gin.Context) {
	sendJSONResponse(ctx, http.StatusOK, gin.H{"hotelName": c.Store.HotelName()})
}

func (c *Controller) UpdateHotelSettings(ctx *gin.Context) {
	var body struct {
		HotelName string `json:"hotelName" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	c.Store.SetHotelName(body.HotelName)
	sendJSONResponse(ctx, http.StatusOK, gin.H{"hotelName": body.HotelName})
}
