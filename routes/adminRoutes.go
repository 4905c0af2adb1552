package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/voltkart/voltkart-api/controllers"
	"github.com/voltkart/voltkart-api/middlewares"
	"github.com/voltkart/voltkart-api/store"
)

func AdminRoutes(server *gin.Engine, s store.Store) {
	admin := server.Group("/api/admin", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.GET("/orders", controllers.GetAllOrders(s))
	}
}
