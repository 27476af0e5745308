package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cardapio-digital/restaurante-api/cart"
	"github.com/cardapio-digital/restaurante-api/config"
	cartController "github.com/cardapio-digital/restaurante-api/controllers/cart"
	menuController "github.com/cardapio-digital/restaurante-api/controllers/menu"
	orderController "github.com/cardapio-digital/restaurante-api/controllers/order"
	paymentController "github.com/cardapio-digital/restaurante-api/controllers/payment"
	settingsController "github.com/cardapio-digital/restaurante-api/controllers/settings"
	"github.com/cardapio-digital/restaurante-api/middleware"
)

// SetupPublicRoutes registers everything the storefront calls anonymously.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB, store *cart.Store, hub *orderController.Hub, cfg *config.Config) {
	// ──────────────── Menu & storefront config ────────────────
	r.GET("/menu", menuController.GetMenu(db))
	r.GET("/config", settingsController.GetPublicConfig(db))
	r.GET("/formas-pagamento", paymentController.GetActivePaymentMethods(db))

	// ──────────────── Session cart ────────────────
	carrinho := r.Group("/carrinho")
	{
		carrinho.GET("", cartController.GetCart(store))
		carrinho.DELETE("", cartController.ClearCart(store))
		carrinho.POST("/itens", cartController.AddItem(db, store))
		carrinho.PUT("/itens/:cartItemId", cartController.UpdateItem(db, store))
		carrinho.POST("/itens/:cartItemId/incrementar", cartController.IncrementItem(store))
		carrinho.POST("/itens/:cartItemId/decrementar", cartController.DecrementItem(store))
		carrinho.DELETE("/itens/:cartItemId", cartController.DeleteItem(store))
	}

	// ──────────────── Checkout & confirmation ────────────────
	r.POST("/pedido", orderController.PlaceOrder(db, store, hub))
	r.GET("/pedido/:id", orderController.GetOrderByID(db))
	// status transitions live under /admin/pedidos too; this alias keeps the
	// path the storefront's back office already calls
	r.PUT("/pedido/:id", middleware.ValidateToken(cfg.Auth.JWTSecret), orderController.UpdateOrderStatus(db))

	// websocket feed for the back office and the receipt-printing agent
	r.GET("/pedidos/feed", middleware.ValidateAPIKey(cfg.Auth.AgentAPIKey), hub.FeedHandler)
}
