package routes

import (
	"github.com/Kariqs/bites-api/controllers"
	"github.com/gin-gonic/gin"
)

func ReceiptRoutes(server *gin.Engine, operator *gin.RouterGroup, c *controllers.Controller) {
	server.GET("/receipts/:id", c.GetReceipt)
	server.POST("/receipts/:id/email", c.EmailReceipt)

	operator.GET("/receipts", c.GetReceipts)
	operator.POST("/orders/:id/receipt", c.CreateReceipt)
}
