package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cardapio-digital/restaurante-api/auth"
	"github.com/cardapio-digital/restaurante-api/config"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", auth.LoginHandler(db, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour, cfg.Auth.JWTSecret))
	}
}
