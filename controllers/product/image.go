package productController

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cardapio-digital/restaurante-api/models"
)

const productPublicPath = "/uploads/products"

// POST /admin/products/:id/image
func UploadProductImage(db *gorm.DB, uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image is required"})
			return
		}

		saveDir := filepath.Join(uploadDir, "products")
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
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to save image: %v", err)})
			return
		}

		// Delete old image if exists
		if product.Image != "" {
			oldPath := filepath.Join(saveDir, filepath.Base(product.Image))
			_ = os.Remove(oldPath)
		}

		product.Image = fmt.Sprintf("%s/%s", productPublicPath, filename)
		if err := db.Model(&product).Update("image", product.Image).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product image"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
