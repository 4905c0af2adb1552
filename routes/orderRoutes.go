package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/voltkart/voltkart-api/controllers"
	"github.com/voltkart/voltkart-api/store"
)

func OrderRoutes(server *gin.Engine, s store.Store) {
	server.POST("/orders", controllers.CreateOrder(s))
	server.GET("/orders/:userId", controllers.GetOrdersByUser(s))
}
