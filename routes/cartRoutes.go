package routes

import (
	"github.com/Kariqs/bites-api/controllers"
	"github.com/gin-gonic/gin"
)

func CartRoutes(server *gin.Engine, c *controllers.Controller) {
	cart := server.Group("/cart")
	{
		cart.GET("", c.GetCart)
		cart.GET("/total", c.GetCartTotal)
		cart.POST("", c.CreateCartItem)
		cart.PUT("/:index", c.UpdateCartItem)
		cart.DELETE("/:index", c.DeleteCartItem)
		cart.DELETE("", c.ClearCart)
	}
	server.POST("/checkout", c.Checkout)
}
