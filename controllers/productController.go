package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Kariqs/bites-api/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (c *Controller) GetMenu(ctx *gin.Context) {
	sendJSONResponse(ctx, http.StatusOK, gin.H{"menu": c.Store.Menu()})
}

func (c *Controller) GetProducts(ctx *gin.Context) {
	sendJSONResponse(ctx, http.StatusOK, gin.H{"products": c.Store.Products()})
}

func (c *Controller) GetProduct(ctx *gin.Context) {
	product, ok := c.Store.Product(ctx.Param("id"))
	if !ok {
		respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		return
	}
	ctx.JSON(http.StatusOK, product)
}

func (c *Controller) CreateProduct(ctx *gin.Context) {
	var product models.Product
	if err := ctx.ShouldBindJSON(&product); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if product.ID == "" {
		product.ID = c.Store.NewProductID()
	} else if _, exists := c.Store.Product(product.ID); exists {
		respondWithError(ctx, http.StatusConflict, "Product with this id already exists", nil)
		return
	}

	c.Store.AddProduct(product)
	zap.S().Infow("product added", "id", product.ID, "name", product.Name)
	ctx.JSON(http.StatusCreated, product)
}

func (c *Controller) UpdateProduct(ctx *gin.Context) {
	var product models.Product
	if err := ctx.ShouldBindJSON(&product); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	product.ID = ctx.Param("id")

	if existing, ok := c.Store.Product(product.ID); ok && product.Image == "" {
		product.Image = existing.Image
	}
	if !c.Store.UpdateProduct(product) {
		respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		return
	}

	ctx.JSON(http.StatusOK, product)
}

func (c *Controller) DeleteProduct(ctx *gin.Context) {
	if !c.Store.RemoveProduct(ctx.Param("id")) {
		respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Product deleted successfully."})
}

// UploadProductImage stores the multipart "image" file and points the
// product's image URL at it.
func (c *Controller) UploadProductImage(ctx *gin.Context) {
	if c.Uploader == nil {
		respondWithError(ctx, http.StatusServiceUnavailable, "Image uploads are not configured", nil)
		return
	}

	product, ok := c.Store.Product(ctx.Param("id"))
	if !ok {
		respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		return
	}

	file, err := ctx.FormFile("image")
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "No file uploaded", err)
		return
	}

	f, err := file.Open()
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Unable to read uploaded file", err)
		return
	}
	defer f.Close()

	// Generate a unique filename to prevent overwrites
	key := fmt.Sprintf("products/%s-%s-%s", product.ID, time.Now().Format("20060102150405"), file.Filename)
	url, err := c.Uploader.Upload(ctx.Request.Context(), key, f, file.Header.Get("Content-Type"))
	if err != nil {
		zap.S().Errorw("product image upload failed", "product", product.ID, "error", err)
		respondWithError(ctx, http.StatusInternalServerError, "Failed to upload image", err)
		return
	}

	product.Image = url
	if !c.Store.UpdateProduct(product) {
		respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		return
	}

	ctx.JSON(http.StatusOK, product)
}
