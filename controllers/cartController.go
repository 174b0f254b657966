package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Kariqs/bites-api/models"
	"github.com/Kariqs/bites-api/store"
	"github.com/gin-gonic/gin"
)

type cartAddOnRequest struct {
	AddOnID  string `json:"addOnId" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

type cartItemRequest struct {
	ProductID string             `json:"productId" binding:"required"`
	Quantity  int                `json:"quantity" binding:"required,min=1"`
	AddOns    []cartAddOnRequest `json:"addOns" binding:"omitempty,dive"`
}

// resolveCartItem builds a cart line from catalog entries as they are now.
func (c *Controller) resolveCartItem(req cartItemRequest) (models.OrderItem, error) {
	product, ok := c.Store.Product(req.ProductID)
	if !ok {
		return models.OrderItem{}, fmt.Errorf("product %q: %w", req.ProductID, store.ErrNotFound)
	}

	item := models.OrderItem{Product: product, Quantity: req.Quantity, AddOns: []models.SelectedAddOn{}}
	for _, selected := range req.AddOns {
		addOn, ok := c.Store.AddOn(selected.AddOnID)
		if !ok {
			return models.OrderItem{}, fmt.Errorf("add-on %q: %w", selected.AddOnID, store.ErrNotFound)
		}
		item.AddOns = append(item.AddOns, models.SelectedAddOn{AddOn: addOn, Quantity: selected.Quantity})
	}
	return item, nil
}

func (c *Controller) bindCartItem(ctx *gin.Context) (models.OrderItem, bool) {
	var req cartItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid input", err)
		return models.OrderItem{}, false
	}

	item, err := c.resolveCartItem(req)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Menu item not found", err)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to build cart item", err)
		}
		return models.OrderItem{}, false
	}
	return item, true
}

func cartIndex(ctx *gin.Context) (int, bool) {
	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid cart index", err)
		return 0, false
	}
	return index, true
}

func (c *Controller) cartResponse() gin.H {
	return gin.H{
		"items": c.Store.CurrentOrder(),
		"total": c.Store.OrderTotal(),
	}
}

func (c *Controller) GetCart(ctx *gin.Context) {
	sendJSONResponse(ctx, http.StatusOK, c.cartResponse())
}

func (c *Controller) GetCartTotal(ctx *gin.Context) {
	sendJSONResponse(ctx, http.StatusOK, gin.H{"total": c.Store.OrderTotal()})
}

func (c *Controller) CreateCartItem(ctx *gin.Context) {
	item, ok := c.bindCartItem(ctx)
	if !ok {
		return
	}

	c.Store.AddToOrder(item)
	response := c.cartResponse()
	response["message"] = item.Product.Name + " has been added to your order."
	sendJSONResponse(ctx, http.StatusCreated, response)
}

func (c *Controller) UpdateCartItem(ctx *gin.Context) {
	index, ok := cartIndex(ctx)
	if !ok {
		return
	}
	item, ok := c.bindCartItem(ctx)
	if !ok {
		return
	}

	if !c.Store.UpdateOrderItem(index, item) {
		sendErrorResponse(ctx, http.StatusNotFound, "Cart item not found")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, c.cartResponse())
}

func (c *Controller) DeleteCartItem(ctx *gin.Context) {
	index, ok := cartIndex(ctx)
	if !ok {
		return
	}

	if !c.Store.RemoveFromOrder(index) {
		sendErrorResponse(ctx, http.StatusNotFound, "Cart item not found")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, c.cartResponse())
}

func (c *Controller) ClearCart(ctx *gin.Context) {
	c.Store.ClearOrder()
	sendJSONResponse(ctx, http.StatusOK, c.cartResponse())
}
