package userController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cardapio-digital/restaurante-api/models"
)

type RoleInput struct {
	Name           string `json:"nome" binding:"required"`
	ManageCatalog  bool   `json:"gerenciaCardapio"`
	ManageOrders   bool   `json:"gerenciaPedidos"`
	ManageSettings bool   `json:"gerenciaConfig"`
	ManageUsers    bool   `json:"gerenciaUsuarios"`
}

// POST /admin/roles
func CreateRole(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RoleInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		role := models.Role{
			Name:           input.Name,
			ManageCatalog:  input.ManageCatalog,
			ManageOrders:   input.ManageOrders,
			ManageSettings: input.ManageSettings,
			ManageUsers:    input.ManageUsers,
		}
		if err := db.Create(&role).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create role"})
			return
		}
		c.JSON(http.StatusCreated, role)
	}
}

// GET /admin/roles
func GetAllRoles(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var roles []models.Role
		if err := db.Order("id asc").Find(&roles).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch roles"})
			return
		}
		c.JSON(http.StatusOK, roles)
	}
}

// PUT /admin/roles/:id
func UpdateRole(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var role models.Role
		if err := db.First(&role, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Role not found"})
			return
		}

		var input RoleInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		role.Name = input.Name
		role.ManageCatalog = input.ManageCatalog
		role.ManageOrders = input.ManageOrders
		role.ManageSettings = input.ManageSettings
		role.ManageUsers = input.ManageUsers

		if err := db.Save(&role).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update role"})
			return
		}
		c.JSON(http.StatusOK, role)
	}
}

// DELETE /admin/roles/:id
func DeleteRole(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var count int64
		if err := db.Model(&models.User{}).Where("role_id = ?", id).Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check role users"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Role still has users"})
			return
		}

		result := db.Delete(&models.Role{}, id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete role"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Role not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Role deleted successfully"})
	}
}
