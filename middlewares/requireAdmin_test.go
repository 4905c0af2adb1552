package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func signToken(t *testing.T, secret string, isAdmin bool, expiresIn time.Duration) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":       "u1",
		"username": "alice",
		"isAdmin":  isAdmin,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(expiresIn).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	assert.NoError(t, err)
	return signed
}

func adminRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/admin", RequireAuth(), RequireAdmin(), func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func performWithToken(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", "/admin", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAdminRouteNoToken(t *testing.T) {
	w := performWithToken(adminRouter(), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRouteMalformedHeader(t *testing.T) {
	w := performWithToken(adminRouter(), "Token abc")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRouteGarbageToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "testsecret")
	w := performWithToken(adminRouter(), "Bearer not.a.token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRouteExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "testsecret")
	token := signToken(t, "testsecret", true, -time.Hour)
	w := performWithToken(adminRouter(), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRouteWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "testsecret")
	token := signToken(t, "othersecret", true, time.Hour)
	w := performWithToken(adminRouter(), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRouteNonAdmin(t *testing.T) {
	t.Setenv("JWT_SECRET", "testsecret")
	token := signToken(t, "testsecret", false, time.Hour)
	w := performWithToken(adminRouter(), "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminRouteAdmin(t *testing.T) {
	t.Setenv("JWT_SECRET", "testsecret")
	token := signToken(t, "testsecret", true, time.Hour)
	w := performWithToken(adminRouter(), "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
}
