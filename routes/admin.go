package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cardapio-digital/restaurante-api/config"
	categoryController "github.com/cardapio-digital/restaurante-api/controllers/category"
	orderController "github.com/cardapio-digital/restaurante-api/controllers/order"
	paymentController "github.com/cardapio-digital/restaurante-api/controllers/payment"
	productController "github.com/cardapio-digital/restaurante-api/controllers/product"
	settingsController "github.com/cardapio-digital/restaurante-api/controllers/settings"
	userController "github.com/cardapio-digital/restaurante-api/controllers/user"
	"github.com/cardapio-digital/restaurante-api/middleware"
)

// SetupAdminRoutes registers all back-office endpoints. Requires a valid JWT;
// user and role management additionally require the admin role.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken(cfg.Auth.JWTSecret))
	{
		// ─────────── Order Management ───────────
		orders := adminGroup.Group("/pedidos")
		{
			orders.GET("", orderController.GetAllOrders(db))
			orders.GET("/:id", orderController.GetOrderByID(db))
			orders.PUT("/:id", orderController.UpdateOrderStatus(db))
			orders.DELETE("/:id", orderController.DeleteOrder(db))
		}

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productController.CreateProduct(db))
			productAdmin.GET("", productController.GetProducts(db))
			productAdmin.GET("/export-excel", productController.ExportProductsToExcel(db))
			productAdmin.GET("/:id", productController.GetProductByID(db))
			productAdmin.PUT("/:id", productController.UpdateProduct(db))
			productAdmin.DELETE("/:id", productController.DeleteProduct(db))
			productAdmin.POST("/:id/image", productController.UploadProductImage(db, cfg.Uploads.Dir))
		}

		// ─────────── Category Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", categoryController.CreateCategory(db))
			categoryAdmin.GET("", categoryController.GetAllCategories(db))
			categoryAdmin.GET("/:id", categoryController.GetCategoryByID(db))
			categoryAdmin.PUT("/:id", categoryController.UpdateCategory(db))
			categoryAdmin.DELETE("/:id", categoryController.DeleteCategory(db))
		}

		// ─────────── Payment Methods ───────────
		paymentAdmin := adminGroup.Group("/payment-methods")
		{
			paymentAdmin.POST("", paymentController.CreatePaymentMethod(db))
			paymentAdmin.GET("", paymentController.GetAllPaymentMethods(db))
			paymentAdmin.PUT("/:id", paymentController.UpdatePaymentMethod(db))
			paymentAdmin.DELETE("/:id", paymentController.DeletePaymentMethod(db))
		}

		// ─────────── Store Configuration ───────────
		configAdmin := adminGroup.Group("/config")
		{
			configAdmin.GET("", settingsController.GetStoreConfig(db))
			configAdmin.PUT("/aparencia", settingsController.UpdateAppearance(db))
			configAdmin.PUT("/fiscal", settingsController.UpdateFiscal(db))
			configAdmin.PUT("/impressao", settingsController.UpdatePrinting(db))
			configAdmin.PUT("/mensagens", settingsController.UpdateMessaging(db))
			configAdmin.GET("/horarios", settingsController.GetOpeningHours(db))
			configAdmin.PUT("/horarios", settingsController.UpdateOpeningHours(db))
		}

		// ─────────── Users & Roles (admin only) ───────────
		userAdmin := adminGroup.Group("/users")
		userAdmin.Use(middleware.RequireRole("admin"))
		{
			userAdmin.POST("", userController.CreateUser(db))
			userAdmin.GET("", userController.GetAllUsers(db))
			userAdmin.PUT("/:id", userController.UpdateUser(db))
			userAdmin.DELETE("/:id", userController.DeleteUser(db))
		}

		roleAdmin := adminGroup.Group("/roles")
		roleAdmin.Use(middleware.RequireRole("admin"))
		{
			roleAdmin.POST("", userController.CreateRole(db))
			roleAdmin.GET("", userController.GetAllRoles(db))
			roleAdmin.PUT("/:id", userController.UpdateRole(db))
			roleAdmin.DELETE("/:id", userController.DeleteRole(db))
		}
	}
}
