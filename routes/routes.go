package routes

import (
	"github.com/Kariqs/bites-api/controllers"
	"github.com/Kariqs/bites-api/middlewares"
	"github.com/gin-gonic/gin"
)

// Register mounts every route group on server.
func Register(server *gin.Engine, c *controllers.Controller) {
	operator := server.Group("/", middlewares.RequireAuth(c.JWTSecret), middlewares.RequireAdmin())

	DefaultRoutes(server, c)
	AuthRoutes(server, c)
	ProductRoutes(server, operator, c)
	CartRoutes(server, c)
	OrderRoutes(operator, c)
	ReceiptRoutes(server, operator, c)
	AdminRoutes(operator, c)
}
