package routes

import (
	"github.com/Kariqs/bites-api/controllers"
	"github.com/gin-gonic/gin"
)

func ProductRoutes(server *gin.Engine, operator *gin.RouterGroup, c *controllers.Controller) {
	server.GET("/menu", c.GetMenu)
	server.GET("/products", c.GetProducts)
	server.GET("/products/:id", c.GetProduct)
	server.GET("/addons", c.GetAddOns)

	operator.POST("/products", c.CreateProduct)
	operator.PUT("/products/:id", c.UpdateProduct)
	operator.DELETE("/products/:id", c.DeleteProduct)
	operator.POST("/products/:id/image", c.UploadProductImage)

	operator.POST("/addons", c.CreateAddOn)
	operator.PUT("/addons/:id", c.UpdateAddOn)
	operator.DELETE("/addons/:id", c.DeleteAddOn)
}
