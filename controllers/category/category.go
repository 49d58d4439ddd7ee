package categoryController

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

const categoryPublicPath = "/uploads/categories"

func categoryUploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return filepath.Join(dir, "categories")
	}
	return "./uploads/categories"
}

// GetCategories lists active categories in display order, optionally
// filtered by type (equipment/consumable).
func GetCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Category{}).Where("is_active = ?", true)

		if categoryType := c.Query("type"); categoryType != "" {
			query = query.Where("category_type = ?", categoryType)
		}

		var categories []models.Category
		if err := query.Order("display_order ASC").Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}

		c.JSON(http.StatusOK, categories)
	}
}

// GetAllCategories is the admin listing: every category, display order.
func GetAllCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Order("display_order ASC").Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

// CreateCategory accepts a multipart form so the icon can be uploaded in the
// same request.
func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		slug := c.PostForm("slug")
		categoryType := c.PostForm("category_type")

		if name == "" || slug == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and slug are required"})
			return
		}
		if categoryType != models.CategoryTypeEquipment && categoryType != models.CategoryTypeConsumable {
			c.JSON(http.StatusBadRequest, gin.H{"error": "category_type must be equipment or consumable"})
			return
		}

		displayOrder := 0
		if orderStr := c.PostForm("display_order"); orderStr != "" {
			if n, err := strconv.Atoi(orderStr); err == nil {
				displayOrder = n
			}
		}

		iconURL, err := saveCategoryIcon(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		category := models.Category{
			Name:         name,
			Slug:         slug,
			CategoryType: categoryType,
			IconURL:      iconURL,
			DisplayOrder: displayOrder,
			IsActive:     true,
		}

		if err := db.Create(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
			return
		}

		c.JSON(http.StatusCreated, category)
	}
}

// UpdateCategory edits fields present in the form; an uploaded icon replaces
// the old one.
func UpdateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var category models.Category
		if err := db.First(&category, "id = ?", id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			}
			return
		}

		if name := c.PostForm("name"); name != "" {
			category.Name = name
		}
		if slug := c.PostForm("slug"); slug != "" {
			category.Slug = slug
		}
		if categoryType := c.PostForm("category_type"); categoryType != "" {
			if categoryType != models.CategoryTypeEquipment && categoryType != models.CategoryTypeConsumable {
				c.JSON(http.StatusBadRequest, gin.H{"error": "category_type must be equipment or consumable"})
				return
			}
			category.CategoryType = categoryType
		}
		if orderStr := c.PostForm("display_order"); orderStr != "" {
			if n, err := strconv.Atoi(orderStr); err == nil {
				category.DisplayOrder = n
			}
		}
		if activeStr := c.PostForm("is_active"); activeStr != "" {
			category.IsActive = activeStr == "true"
		}

		if iconURL, err := saveCategoryIcon(c); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		} else if iconURL != "" {
			category.IconURL = iconURL
		}

		if err := db.Save(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
			return
		}

		c.JSON(http.StatusOK, category)
	}
}

// DeleteCategory removes a category. Products keep their slug; the storefront
// simply stops listing the category.
func DeleteCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		result := db.Where("id = ?", id).Delete(&models.Category{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
	}
}

func saveCategoryIcon(c *gin.Context) (string, error) {
	file, err := c.FormFile("icon")
	if err != nil {
		return "", nil // icon is optional
	}

	saveDir := categoryUploadDir()
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create upload folder")
	}

	ext := filepath.Ext(file.Filename)
	base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
	base = strings.ReplaceAll(base, " ", "_")
	filename := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), base, ext)

	if err := c.SaveUploadedFile(file, filepath.Join(saveDir, filename)); err != nil {
		return "", fmt.Errorf("failed to save icon")
	}

	return fmt.Sprintf("%s/%s", categoryPublicPath, filename), nil
}
