package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/voltkart/voltkart-api/models"
	"github.com/voltkart/voltkart-api/store"
	"github.com/voltkart/voltkart-api/utils"
	"go.uber.org/zap"
)

const paymentModeOnline = "Online"

// paymentMethodLabel renders the stored payment_method string: the bare mode
// for offline modes, "<mode> - <method> (<details>)" for online payments.
func paymentMethodLabel(mode, onlineMethod, paymentDetails string) string {
	if mode == paymentModeOnline {
		return fmt.Sprintf("%s - %s (%s)", mode, onlineMethod, paymentDetails)
	}
	return mode
}

// CreateOrder fans a submitted cart out into one pending order record per
// line. Writes are sequential with no all-or-nothing guarantee: a failure
// partway leaves the earlier lines committed and surfaces the first error.
func CreateOrder(s store.Store) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var input models.OrderInput
		if err := ctx.ShouldBindJSON(&input); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}

		paymentMethod := paymentMethodLabel(input.PaymentMode, input.OnlineMethod, input.PaymentDetails)

		for _, line := range input.Cart {
			order := models.Order{
				ID:            uuid.NewString(),
				UserID:        input.UserID,
				ProductID:     line.ProductID,
				Quantity:      line.Quantity,
				Status:        models.OrderStatusPending,
				Address:       input.Address,
				PaymentMethod: paymentMethod,
				CreatedAt:     time.Now(),
			}

			if err := s.CreateOrder(ctx.Request.Context(), &order); err != nil {
				utils.Logger.Error("order write failed",
					zap.String("user_id", input.UserID),
					zap.String("product_id", line.ProductID),
					zap.Error(err))
				sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to place order")
				return
			}
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"success": true,
			"message": "Order placed successfully",
		})
	}
}

func GetOrdersByUser(s store.Store) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		orders, err := s.ListOrdersByUser(ctx.Request.Context(), ctx.Param("userId"))
		if err != nil {
			utils.Logger.Error("unable to fetch orders", zap.Error(err))
			sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch orders")
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "orders": orders})
	}
}
