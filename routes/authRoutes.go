package routes

import (
	"github.com/Kariqs/bites-api/controllers"
	"github.com/gin-gonic/gin"
)

func AuthRoutes(server *gin.Engine, c *controllers.Controller) {
	auth := server.Group("/auth")
	{
		auth.POST("/login", c.Login)
	}
}
