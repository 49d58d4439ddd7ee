package slideController

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

const slidePublicPath = "/uploads/slides"

func slideUploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return filepath.Join(dir, "slides")
	}
	return "./uploads/slides"
}

// GetSlides lists active homepage slides in display order, optionally
// filtered by category type.
func GetSlides(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.HomepageSlide{}).Where("is_active = ?", true)

		if categoryType := c.Query("type"); categoryType != "" {
			query = query.Where("category_type = ?", categoryType)
		}

		var slides []models.HomepageSlide
		if err := query.Order("display_order ASC").Find(&slides).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch slides"})
			return
		}

		c.JSON(http.StatusOK, slides)
	}
}

// GetAllSlides is the admin listing, every slide in display order.
func GetAllSlides(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var slides []models.HomepageSlide
		if err := db.Order("display_order ASC").Find(&slides).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch slides"})
			return
		}
		c.JSON(http.StatusOK, slides)
	}
}

// CreateSlide saves the uploaded image locally and stores the slide row.
func CreateSlide(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No image uploaded"})
			return
		}

		saveDir := slideUploadDir()
		if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload folder"})
			return
		}

		ext := filepath.Ext(file.Filename)
		base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
		base = strings.ReplaceAll(base, " ", "_")
		filename := fmt.Sprintf("%d_%s%s", time.Now().Unix(), base, ext)

		if err := c.SaveUploadedFile(file, filepath.Join(saveDir, filename)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
			return
		}

		displayOrder := 0
		if orderStr := c.PostForm("display_order"); orderStr != "" {
			if n, err := strconv.Atoi(orderStr); err == nil {
				displayOrder = n
			}
		}

		slide := models.HomepageSlide{
			ImageURL:     fmt.Sprintf("%s/%s", slidePublicPath, filename),
			Title:        c.PostForm("title"),
			Subtitle:     c.PostForm("subtitle"),
			LinkURL:      c.PostForm("link_url"),
			CategoryType: c.PostForm("category_type"),
			DisplayOrder: displayOrder,
			IsActive:     true,
		}

		if err := db.Create(&slide).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "DB save failed"})
			return
		}

		c.JSON(http.StatusCreated, slide)
	}
}

// UpdateSlide edits text fields and flags; the image itself is immutable,
// admins delete and re-upload instead.
func UpdateSlide(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var slide models.HomepageSlide
		if err := db.First(&slide, "id = ?", id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Slide not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			}
			return
		}

		var input struct {
			Title        *string `json:"title"`
			Subtitle     *string `json:"subtitle"`
			LinkURL      *string `json:"link_url"`
			CategoryType *string `json:"category_type"`
			DisplayOrder *int    `json:"display_order"`
			IsActive     *bool   `json:"is_active"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.Title != nil {
			slide.Title = *input.Title
		}
		if input.Subtitle != nil {
			slide.Subtitle = *input.Subtitle
		}
		if input.LinkURL != nil {
			slide.LinkURL = *input.LinkURL
		}
		if input.CategoryType != nil {
			slide.CategoryType = *input.CategoryType
		}
		if input.DisplayOrder != nil {
			slide.DisplayOrder = *input.DisplayOrder
		}
		if input.IsActive != nil {
			slide.IsActive = *input.IsActive
		}

		if err := db.Save(&slide).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update slide"})
			return
		}

		c.JSON(http.StatusOK, slide)
	}
}

// ReorderSlides persists a new display order for the given slide ids, in the
// order they are submitted.
func ReorderSlides(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			SlideIDs []string `json:"slide_ids" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			for position, id := range input.SlideIDs {
				if err := tx.Model(&models.HomepageSlide{}).
					Where("id = ?", id).
					Update("display_order", position).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reorder slides"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Slides reordered"})
	}
}

// DeleteSlide removes both the DB record and the local file.
func DeleteSlide(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var slide models.HomepageSlide
		if err := db.First(&slide, "id = ?", id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Slide not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		if strings.HasPrefix(slide.ImageURL, slidePublicPath) {
			localPath := filepath.Join(slideUploadDir(), filepath.Base(slide.ImageURL))
			if err := os.Remove(localPath); err != nil && !os.IsNotExist(err) {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete file"})
				return
			}
		}

		if err := db.Delete(&slide).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete from database"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Slide deleted"})
	}
}
