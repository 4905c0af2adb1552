package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/voltkart/voltkart-api/store"
	"github.com/voltkart/voltkart-api/utils"
	"go.uber.org/zap"
)

// GetAllOrders lists every order in the store for the admin dashboard.
func GetAllOrders(s store.Store) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		orders, err := s.ListAllOrders(ctx.Request.Context())
		if err != nil {
			utils.Logger.Error("unable to fetch all orders", zap.Error(err))
			sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch orders")
			return
		}

		ctx.JSON(http.StatusOK, orders)
	}
}
