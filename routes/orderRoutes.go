package routes

import (
	"github.com/Kariqs/bites-api/controllers"
	"github.com/gin-gonic/gin"
)

func OrderRoutes(operator *gin.RouterGroup, c *controllers.Controller) {
	operator.GET("/kitchen/orders", c.GetKitchenOrders)
	operator.GET("/orders", c.GetOrders)
	operator.GET("/orders/:id", c.GetOrder)
	operator.POST("/orders/:id/accept", c.AcceptOrder)
	operator.POST("/orders/:id/complete", c.CompleteOrder)
}
