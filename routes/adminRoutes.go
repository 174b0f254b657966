package routes

import (
	"github.com/Kariqs/bites-api/controllers"
	"github.com/gin-gonic/gin"
)

func AdminRoutes(operator *gin.RouterGroup, c *controllers.Controller) {
	operator.GET("/admin/stats", c.GetStats)
	operator.GET("/settings/hotel", c.GetHotelSettings)
	operator.PUT("/settings/hotel", c.UpdateHotelSettings)
}
