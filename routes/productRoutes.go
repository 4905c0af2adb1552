package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/voltkart/voltkart-api/controllers"
	"github.com/voltkart/voltkart-api/store"
)

func ProductRoutes(server *gin.Engine, s store.Store) {
	server.GET("/products", controllers.GetProducts(s))
	server.GET("/products/:id", controllers.GetProduct(s))
}
