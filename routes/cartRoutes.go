package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/voltkart/voltkart-api/controllers"
	"github.com/voltkart/voltkart-api/store"
)

func CartRoutes(server *gin.Engine, s store.Store) {
	server.POST("/cart", controllers.UpdateCartItem(s))
	server.GET("/cart/:userId", controllers.GetCart(s))
}
