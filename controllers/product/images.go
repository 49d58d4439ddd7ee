package productController

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lahsenimdlass-alt/dentalstore-api/models"
)

const productPublicPath = "/uploads/products"

func productUploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return filepath.Join(dir, "products")
	}
	return "./uploads/products"
}

// UploadProductImage saves one gallery image to disk and records it against
// the product. Optional form field display_order controls gallery position.
func UploadProductImage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Param("id")

		var product models.Product
		if err := db.First(&product, "id = ?", productID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No image uploaded"})
			return
		}

		saveDir := productUploadDir()
		if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload folder"})
			return
		}

		ext := filepath.Ext(file.Filename)
		base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
		base = strings.ReplaceAll(base, " ", "_")
		filename := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), base, ext)
		savePath := filepath.Join(saveDir, filename)

		if err := c.SaveUploadedFile(file, savePath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
			return
		}

		displayOrder := 0
		if orderStr := c.PostForm("display_order"); orderStr != "" {
			if n, err := strconv.Atoi(orderStr); err == nil {
				displayOrder = n
			}
		}

		image := models.ProductImage{
			ProductID:    productID,
			ImageURL:     fmt.Sprintf("%s/%s", productPublicPath, filename),
			DisplayOrder: displayOrder,
		}
		if err := db.Create(&image).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "DB save failed"})
			return
		}

		// First uploaded image doubles as the product's main image.
		if product.ImageURL == "" {
			product.ImageURL = image.ImageURL
			if err := db.Save(&product).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product image"})
				return
			}
		}

		c.JSON(http.StatusCreated, image)
	}
}

// DeleteProductImage removes a gallery entry and its file on disk.
func DeleteProductImage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Param("id")
		imageID := c.Param("image_id")

		var image models.ProductImage
		if err := db.First(&image, "id = ? AND product_id = ?", imageID, productID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		if strings.HasPrefix(image.ImageURL, productPublicPath) {
			localPath := filepath.Join(productUploadDir(), filepath.Base(image.ImageURL))
			if err := os.Remove(localPath); err != nil && !os.IsNotExist(err) {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete file"})
				return
			}
		}

		if err := db.Delete(&image).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete from database"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Image deleted"})
	}
}
