package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cardapio-digital/restaurante-api/cart"
	"github.com/cardapio-digital/restaurante-api/config"
	orderController "github.com/cardapio-digital/restaurante-api/controllers/order"
)

// SetupRoutes is the single entry point that wires up the public storefront,
// auth, and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, store *cart.Store, hub *orderController.Hub, cfg *config.Config) {
	// Public storefront routes (no middleware)
	SetupPublicRoutes(r, db, store, hub, cfg)

	// Auth routes
	SetupAuthRoutes(r, db, cfg)

	// Admin routes (JWT-protected)
	SetupAdminRoutes(r, db, cfg)
}
