package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/voltkart/voltkart-api/controllers"
)

func PaymentRoutes(server *gin.Engine) {
	payment := server.Group("/api/payment")
	{
		payment.GET("/test", controllers.PaymentTest)
		payment.POST("/create-order", controllers.CreatePaymentOrder)
		payment.POST("/verify-payment", controllers.VerifyPayment)
	}
}
