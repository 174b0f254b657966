package routes

import (
	"github.com/Kariqs/bites-api/controllers"
	"github.com/gin-gonic/gin"
)

func DefaultRoutes(server *gin.Engine, c *controllers.Controller) {
	server.GET("/", c.GetHome)
}
