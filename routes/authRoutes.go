package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/voltkart/voltkart-api/controllers"
	"github.com/voltkart/voltkart-api/store"
)

func AuthRoutes(server *gin.Engine, s store.Store) {
	server.POST("/signup", controllers.Signup(s))
	server.POST("/login", controllers.Login(s))
}
