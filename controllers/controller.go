package controllers

import (
	"context"
	"io"

	"github.com/Kariqs/bites-api/models"
	"github.com/Kariqs/bites-api/store"
	"github.com/Kariqs/bites-api/utils"
	"github.com/gin-gonic/gin"
)

// ImageUploader stores an uploaded file and returns the URL it is served from.
type ImageUploader interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

// Controller serves the menu, cart, checkout, kitchen and admin views from a
// single store.
type Controller struct {
	Store     *store.Store
	Operator  models.Operator
	JWTSecret []byte

	// Uploader is nil when image uploads are not configured.
	Uploader  ImageUploader
	SendEmail func(emailTo, emailSubject, body string) error
}

func New(s *store.Store, operator models.Operator, jwtSecret []byte) *Controller {
	return &Controller{
		Store:     s,
		Operator:  operator,
		JWTSecret: jwtSecret,
		SendEmail: utils.SendEmail,
	}
}

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

// Common error response helper
func respondWithError(ctx *gin.Context, statusCode int, message string, err error) {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	ctx.JSON(statusCode, gin.H{
		"message": message,
		"error":   errMsg,
	})
}
