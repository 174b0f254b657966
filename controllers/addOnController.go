package controllers

import (
	"net/http"

	"github.com/Kariqs/bites-api/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (c *Controller) GetAddOns(ctx *gin.Context) {
	sendJSONResponse(ctx, http.StatusOK, gin.H{"addOns": c.Store.AddOns()})
}

func (c *Controller) CreateAddOn(ctx *gin.Context) {
	var addOn models.AddOn
	if err := ctx.ShouldBindJSON(&addOn); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if addOn.ID == "" {
		addOn.ID = c.Store.NewAddOnID()
	} else if _, exists := c.Store.AddOn(addOn.ID); exists {
		respondWithError(ctx, http.StatusConflict, "Add-on with this id already exists", nil)
		return
	}

	c.Store.AddAddOn(addOn)
	zap.S().Infow("add-on added", "id", addOn.ID, "name", addOn.Name)
	ctx.JSON(http.StatusCreated, addOn)
}

func (c *Controller) UpdateAddOn(ctx *gin.Context) {
	var addOn models.AddOn
	if err := ctx.ShouldBindJSON(&addOn); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	addOn.ID = ctx.Param("id")

	if !c.Store.UpdateAddOn(addOn) {
		respondWithError(ctx, http.StatusNotFound, "Add-on not found", nil)
		return
	}
	ctx.JSON(http.StatusOK, addOn)
}

func (c *Controller) DeleteAddOn(ctx *gin.Context) {
	if !c.Store.RemoveAddOn(ctx.Param("id")) {
		respondWithError(ctx, http.StatusNotFound, "Add-on not found", nil)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Add-on deleted successfully."})
}
