package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/voltkart/voltkart-api/models"
	"github.com/voltkart/voltkart-api/store"
	"github.com/voltkart/voltkart-api/utils"
	"go.uber.org/zap"
)

// UpdateCartItem upserts a (user, product) cart line. A repeated submission
// overwrites the stored quantity, it never accumulates.
func UpdateCartItem(s store.Store) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var input models.CartLineInput
		if err := ctx.ShouldBindJSON(&input); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}

		line := models.CartLine{
			ID:        uuid.NewString(),
			UserID:    input.UserID,
			ProductID: input.ProductID,
			Quantity:  input.Quantity,
		}

		if err := s.UpsertCartLine(ctx.Request.Context(), &line); err != nil {
			utils.Logger.Error("cart upsert error", zap.Error(err))
			sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to update cart")
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"success": true,
			"message": "Cart updated successfully",
		})
	}
}

func GetCart(s store.Store) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		cart, err := s.GetCart(ctx.Request.Context(), ctx.Param("userId"))
		if err != nil {
			utils.Logger.Error("unable to fetch cart", zap.Error(err))
			sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch cart")
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "cart": cart})
	}
}
