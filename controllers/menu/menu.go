package menuController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cardapio-digital/restaurante-api/models"
)

// GET /menu
// Returns the full storefront tree: active categories in display order, each
// with its active products and their option groups/options.
func GetMenu(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		err := db.
			Where("active = ?", true).
			Order("position asc, id asc").
			Preload("Products", func(db *gorm.DB) *gorm.DB {
				return db.Where("active = ?", true).Order("products.position asc, products.id asc")
			}).
			Preload("Products.Groups", func(db *gorm.DB) *gorm.DB {
				return db.Order("option_groups.position asc, option_groups.id asc")
			}).
			Preload("Products.Groups.Options", func(db *gorm.DB) *gorm.DB {
				return db.Where("active = ?", true).Order("options.id asc")
			}).
			Find(&categories).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch menu"})
			return
		}

		c.JSON(http.StatusOK, categories)
	}
}
