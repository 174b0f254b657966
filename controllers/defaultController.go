package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (c *Controller) GetHome(ctx *gin.Context) {
	message := `Welcome to ` + c.Store.HotelName() + `. The following are the endpoints for this API:

MENU
- GET "/menu" - Products grouped by category
- GET "/products" - Get all products
- GET "/products/:id" - Get product by ID
- GET "/addons" - Get all add-ons

CART
- GET "/cart" - Current order lines
- POST "/cart" - Add a product with add-ons
- PUT "/cart/:index" - Replace a line
- DELETE "/cart/:index" - Remove a line
- DELETE "/cart" - Clear the cart
- GET "/cart/total" - Cart total

CHECKOUT & RECEIPTS
- POST "/checkout" - Pay (cash or online) and get a receipt
- GET "/receipts/:id" - Get receipt by ID
- POST "/receipts/:id/email" - E-mail a receipt

OPERATOR (POST "/auth/login" for a token)
- GET "/kitchen/orders" - Pending and accepted orders
- POST "/orders/:id/accept" - Accept an order
- POST "/orders/:id/complete" - Complete an order
- GET "/admin/stats" - Sales dashboard
- POST/PUT/DELETE "/products", "/addons" - Manage the catalog
- PUT "/settings/hotel" - Rename the restaurant`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
