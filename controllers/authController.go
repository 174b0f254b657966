package controllers

import (
	"net/http"
	"time"

	"github.com/Kariqs/bites-api/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	// Default cost for bcrypt password hashing
	bcryptCost = 10

	tokenLifetime = 12 * time.Hour

	msgInvalidInput          = "invalid input"
	msgInvalidCredentials    = "invalid username or password"
	msgFailedToGenerateToken = "failed to generate token"
)

// NewOperator hashes the configured operator password once at startup.
func NewOperator(username, password string) (models.Operator, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return models.Operator{}, err
	}
	return models.Operator{Username: username, PasswordHash: hash, Role: models.RoleAdmin}, nil
}

func (c *Controller) generateJWT(operator models.Operator) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": operator.Username,
		"role":     operator.Role,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(tokenLifetime).Unix(),
	})
	return token.SignedString(c.JWTSecret)
}

// Login checks the operator credentials and returns a token for the kitchen
// and admin views.
func (c *Controller) Login(ctx *gin.Context) {
	var loginData models.LoginData
	if err := ctx.ShouldBindJSON(&loginData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if loginData.Username != c.Operator.Username ||
		bcrypt.CompareHashAndPassword(c.Operator.PasswordHash, []byte(loginData.Password)) != nil {
		zap.S().Infow("rejected operator login", "username", loginData.Username)
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidCredentials)
		return
	}

	tokenString, err := c.generateJWT(c.Operator)
	if err != nil {
		zap.S().Errorw("JWT generation error", "error", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToGenerateToken)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"token": tokenString})
}
