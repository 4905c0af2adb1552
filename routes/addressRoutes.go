package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/voltkart/voltkart-api/controllers"
	"github.com/voltkart/voltkart-api/store"
)

func AddressRoutes(server *gin.Engine, s store.Store) {
	server.POST("/addresses", controllers.CreateAddress(s))
	server.GET("/addresses/:userId", controllers.GetAddressesByUser(s))
}
