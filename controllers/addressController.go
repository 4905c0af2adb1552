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

// CreateAddress appends a delivery address for a user. Addresses are never
// edited in place.
func CreateAddress(s store.Store) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var input models.AddressInput
		if err := ctx.ShouldBindJSON(&input); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}

		address := models.Address{
			ID:      uuid.NewString(),
			UserID:  input.UserID,
			Address: input.Address,
		}

		if err := s.CreateAddress(ctx.Request.Context(), &address); err != nil {
			utils.Logger.Error("address creation error", zap.Error(err))
			sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to save address")
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "address": address})
	}
}

func GetAddressesByUser(s store.Store) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		addresses, err := s.ListAddressesByUser(ctx.Request.Context(), ctx.Param("userId"))
		if err != nil {
			utils.Logger.Error("unable to fetch addresses", zap.Error(err))
			sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch addresses")
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "addresses": addresses})
	}
}
