package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/voltkart/voltkart-api/store"
	"github.com/voltkart/voltkart-api/utils"
	"go.uber.org/zap"
)

func GetProducts(s store.Store) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		products, err := s.ListProducts(ctx.Request.Context())
		if err != nil {
			utils.Logger.Error("unable to fetch products", zap.Error(err))
			sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch products")
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "products": products})
	}
}

func GetProduct(s store.Store) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		product, err := s.GetProduct(ctx.Request.Context(), ctx.Param("id"))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				sendErrorResponse(ctx, http.StatusNotFound, "Product not found")
				return
			}
			utils.Logger.Error("unable to fetch product", zap.Error(err))
			sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to retrieve product")
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "product": product})
	}
}
