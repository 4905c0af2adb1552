package controllers

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/voltkart/voltkart-api/models"
	"github.com/voltkart/voltkart-api/store"
	"github.com/voltkart/voltkart-api/utils"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	// Default cost for bcrypt password hashing
	bcryptCost = 10

	// Standard response messages
	msgInvalidInput          = "invalid input"
	msgUserAlreadyExists     = "User already exists"
	msgUserNotFound          = "User not found"
	msgInvalidPassword       = "Invalid password"
	msgFailedToHashPassword  = "failed to hash password"
	msgFailedToGenerateToken = "failed to generate token"
	msgInternalServerError   = "Internal server error"
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"success": false, "error": message})
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func comparePasswords(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func generateJWT(user models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":       user.ID,
		"username": user.Username,
		"isAdmin":  user.IsAdmin,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(time.Hour * 24).Unix(),
	})

	jwtSecret := os.Getenv("JWT_SECRET")
	return token.SignedString([]byte(jwtSecret))
}

// Signup handles user registration. The username existence check runs before
// the insert; on the document backend nothing else enforces uniqueness, so
// two concurrent signups for the same name can race past it.
func Signup(s store.Store) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var signUpData models.SignupData
		if err := ctx.ShouldBindJSON(&signUpData); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}

		_, err := s.GetUserByUsername(ctx.Request.Context(), signUpData.Username)
		if err == nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgUserAlreadyExists)
			return
		}
		if !errors.Is(err, store.ErrNotFound) {
			utils.Logger.Error("database error during user check", zap.Error(err))
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
			return
		}

		hashedPassword, err := hashPassword(signUpData.Password)
		if err != nil {
			utils.Logger.Error("password hashing error", zap.Error(err))
			sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToHashPassword)
			return
		}

		user := models.User{
			ID:        uuid.NewString(),
			Username:  signUpData.Username,
			Password:  hashedPassword,
			IsAdmin:   signUpData.IsAdmin,
			CreatedAt: time.Now(),
		}

		if err := s.CreateUser(ctx.Request.Context(), &user); err != nil {
			if errors.Is(err, store.ErrConflict) {
				sendErrorResponse(ctx, http.StatusBadRequest, msgUserAlreadyExists)
				return
			}
			utils.Logger.Error("user creation error", zap.Error(err))
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "user": user.Public()})
	}
}

// Login handles user authentication and token issuance.
func Login(s store.Store) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var loginData models.LoginData
		if err := ctx.ShouldBindJSON(&loginData); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}

		user, err := s.GetUserByUsername(ctx.Request.Context(), loginData.Username)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				sendErrorResponse(ctx, http.StatusNotFound, msgUserNotFound)
				return
			}
			utils.Logger.Error("database error during login", zap.Error(err))
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
			return
		}

		if err := comparePasswords(user.Password, loginData.Password); err != nil {
			sendErrorResponse(ctx, http.StatusUnauthorized, msgInvalidPassword)
			return
		}

		tokenString, err := generateJWT(*user)
		if err != nil {
			utils.Logger.Error("JWT generation error", zap.Error(err))
			sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToGenerateToken)
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"success": true,
			"user":    user.Public(),
			"token":   tokenString,
		})
	}
}
