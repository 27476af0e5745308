package paymentController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cardapio-digital/restaurante-api/models"
)

type PaymentMethodInput struct {
	Name   string `json:"nome" binding:"required"`
	Active *bool  `json:"ativo"`
}

// GET /formas-pagamento (public)
// Storefront checkout lists only the active methods.
func GetActivePaymentMethods(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var methods []models.PaymentMethod
		if err := db.Where("active = ?", true).Order("id asc").Find(&methods).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payment methods"})
			return
		}
		c.JSON(http.StatusOK, methods)
	}
}

// GET /admin/payment-methods
func GetAllPaymentMethods(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var methods []models.PaymentMethod
		if err := db.Order("id asc").Find(&methods).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payment methods"})
			return
		}
		c.JSON(http.StatusOK, methods)
	}
}

// POST /admin/payment-methods
func CreatePaymentMethod(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input PaymentMethodInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		active := true
		if input.Active != nil {
			active = *input.Active
		}
		method := models.PaymentMethod{Name: input.Name, Active: active}

		if err := db.Create(&method).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment method"})
			return
		}
		c.JSON(http.StatusCreated, method)
	}
}

// PUT /admin/payment-methods/:id
func UpdatePaymentMethod(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var method models.PaymentMethod
		if err := db.First(&method, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment method not found"})
			return
		}

		var input PaymentMethodInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		method.Name = input.Name
		if input.Active != nil {
			method.Active = *input.Active
		}

		if err := db.Save(&method).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment method"})
			return
		}
		c.JSON(http.StatusOK, method)
	}
}

// DELETE /admin/payment-methods/:id
func DeletePaymentMethod(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var count int64
		if err := db.Model(&models.Order{}).Where("payment_method_id = ?", id).Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check payment method orders"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Payment method is referenced by orders; deactivate it instead"})
			return
		}

		result := db.Delete(&models.PaymentMethod{}, id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete payment method"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment method not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Payment method deleted successfully"})
	}
}
