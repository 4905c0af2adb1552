package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Voltkart API.

The following are the endpoints for this API:

AUTH
- POST "/signup" - Create user account
- POST "/login" - Access user account

PRODUCTS
- GET "/products" - Get all products
- GET "/products/:id" - Get product by ID

CART
- POST "/cart" - Add or update a cart line
- GET "/cart/:userId" - Get a user's cart

ORDERS
- POST "/orders" - Place an order from a cart
- GET "/orders/:userId" - Get orders for a user

ADDRESSES
- POST "/addresses" - Save a delivery address
- GET "/addresses/:userId" - Get addresses for a user

PAYMENT
- GET "/api/payment/test" - Payment route liveness check
- POST "/api/payment/create-order" - Create a provider payment order
- POST "/api/payment/verify-payment" - Verify a payment signature

ADMIN
- GET "/api/admin/orders" - List all orders (admin token required)`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
