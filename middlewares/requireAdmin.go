package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// RequireAdmin runs after RequireAuth and asserts the isAdmin claim.
func RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userClaims, exists := ctx.Get("user")
		if !exists {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "User not found in context"})
			return
		}

		claims := userClaims.(jwt.MapClaims)
		isAdmin, ok := claims["isAdmin"].(bool)
		if !ok || !isAdmin {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "error": "Admin access required"})
			return
		}

		ctx.Next()
	}
}
