package settingsController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cardapio-digital/restaurante-api/models"
)

// GET /config (public)
// The storefront subset: appearance, delivery pricing and opening hours.
func GetPublicConfig(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg, err := models.LoadStoreConfig(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load store configuration"})
			return
		}

		var hours []models.OpeningHour
		if err := db.Order("weekday asc").Find(&hours).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load opening hours"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"aparencia":    cfg.Appearance,
			"taxaEntrega":  cfg.Fiscal.DeliveryFee,
			"pedidoMinimo": cfg.Fiscal.MinimumOrder,
			"horarios":     hours,
		})
	}
}

// GET /admin/config
func GetStoreConfig(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg, err := models.LoadStoreConfig(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load store configuration"})
			return
		}
		c.JSON(http.StatusOK, cfg)
	}
}

// PUT /admin/config/aparencia
func UpdateAppearance(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.AppearanceSettings
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		updateSection(c, db, func(cfg *models.StoreConfig) {
			cfg.Appearance = input
		})
	}
}

// PUT /admin/config/fiscal
func UpdateFiscal(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.FiscalSettings
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.DeliveryFee.IsNegative() || input.MinimumOrder.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Monetary values cannot be negative"})
			return
		}
		updateSection(c, db, func(cfg *models.StoreConfig) {
			cfg.Fiscal = input
		})
	}
}

// PUT /admin/config/impressao
func UpdatePrinting(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.PrintingSettings
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Copies < 1 {
			input.Copies = 1
		}
		updateSection(c, db, func(cfg *models.StoreConfig) {
			cfg.Printing = input
		})
	}
}

// PUT /admin/config/mensagens
func UpdateMessaging(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.MessagingSettings
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		updateSection(c, db, func(cfg *models.StoreConfig) {
			cfg.Messaging = input
		})
	}
}

func updateSection(c *gin.Context, db *gorm.DB, apply func(*models.StoreConfig)) {
	cfg, err := models.LoadStoreConfig(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load store configuration"})
		return
	}
	apply(cfg)
	if err := db.Save(cfg).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update store configuration"})
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// GET /admin/config/horarios
func GetOpeningHours(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var hours []models.OpeningHour
		if err := db.Order("weekday asc").Find(&hours).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load opening hours"})
			return
		}
		c.JSON(http.StatusOK, hours)
	}
}

// PUT /admin/config/horarios
// Replaces the whole weekly schedule in one call.
func UpdateOpeningHours(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input []models.OpeningHour
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		for _, h := range input {
			if h.Weekday < 0 || h.Weekday > 6 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "diaSemana must be between 0 and 6"})
				return
			}
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("1 = 1").Delete(&models.OpeningHour{}).Error; err != nil {
				return err
			}
			for i := range input {
				input[i].ID = 0
				if err := tx.Create(&input[i]).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update opening hours"})
			return
		}
		c.JSON(http.StatusOK, input)
	}
}
