package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/cardapio-digital/restaurante-api/cart"
	"github.com/cardapio-digital/restaurante-api/config"
	orderController "github.com/cardapio-digital/restaurante-api/controllers/order"
	"github.com/cardapio-digital/restaurante-api/models"
	"github.com/cardapio-digital/restaurante-api/routes"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Init DB
	db := initDatabase(cfg)

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.OptionGroup{},
		&models.Option{},
		&models.PaymentMethod{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderItemSelection{},
		&models.Role{},
		&models.User{},
		&models.StoreConfig{},
		&models.OpeningHour{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	if err := seedDefaults(db, cfg); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	// Gin setup
	r := gin.Default()

	// Product images are small, but keep headroom for batch uploads
	r.MaxMultipartMemory = 32 << 20 // 32MB

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY", "X-Session-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Serve uploaded images
	r.Static("/uploads", cfg.Uploads.Dir)

	// In-memory session carts and the live order feed
	store := cart.NewStore()
	hub := orderController.NewHub()

	// Setup routes
	routes.SetupRoutes(r, db, store, hub, cfg)

	// Back up product images daily at 2 AM, keep 4 days of backups
	go startDailyBackupAtFixedTime(cfg.Uploads.Dir, cfg.Uploads.BackupDir, 4*24*time.Hour, 2, 0)

	// Start server
	log.Printf("🚀 Server running on port %s...", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}

// seedDefaults creates the default roles, the store configuration row and,
// when the database has no users yet, the bootstrap admin account.
func seedDefaults(db *gorm.DB, cfg *config.Config) error {
	adminRole := models.Role{
		Name:           "admin",
		ManageCatalog:  true,
		ManageOrders:   true,
		ManageSettings: true,
		ManageUsers:    true,
	}
	if err := db.Where(models.Role{Name: "admin"}).FirstOrCreate(&adminRole).Error; err != nil {
		return err
	}
	staffRole := models.Role{
		Name:          "staff",
		ManageCatalog: true,
		ManageOrders:  true,
	}
	if err := db.Where(models.Role{Name: "staff"}).FirstOrCreate(&staffRole).Error; err != nil {
		return err
	}

	if _, err := models.LoadStoreConfig(db); err != nil {
		return err
	}

	var userCount int64
	if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount == 0 {
		if cfg.Auth.AdminPassword == "" {
			log.Println("⚠️ No users exist and ADMIN_PASSWORD is unset; skipping admin bootstrap")
			return nil
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.Auth.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin := models.User{
			Name:         "Administrador",
			Email:        cfg.Auth.AdminEmail,
			PasswordHash: string(hashed),
			RoleID:       adminRole.ID,
			Active:       true,
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
		log.Printf("✅ Bootstrap admin created: %s", admin.Email)
	}
	return nil
}

// startDailyBackupAtFixedTime backs up images daily at a fixed hour and removes old backups
func startDailyBackupAtFixedTime(srcDir, backupDir string, retention time.Duration, hour, min int) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		sleepDuration := next.Sub(now)
		log.Printf("⏳ Next image backup scheduled at: %s", next.Format("2006-01-02 15:04:05"))
		time.Sleep(sleepDuration)

		timestamp := time.Now().Format("2006-01-02_15-04-05")
		destDir := filepath.Join(backupDir, timestamp)

		if err := copyDir(srcDir, destDir); err != nil {
			log.Printf("❌ Failed to back up images: %v", err)
		} else {
			log.Printf("✅ Images backed up to %s", destDir)
		}

		cleanupOldBackups(backupDir, retention)
	}
}

// copyDir recursively copies a folder
func copyDir(src, dest string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dest, 0755); err != nil {
		return err
	}
	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		destPath := filepath.Join(dest, entry.Name())

		if entry.IsDir() {
			if err := copyDir(srcPath, destPath); err != nil {
				return err
			}
		} else {
			if err := copyFile(srcPath, destPath); err != nil {
				return err
			}
		}
	}
	return nil
}

// copyFile copies a single file
func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err = io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}

// cleanupOldBackups removes backup folders older than retention duration
func cleanupOldBackups(backupDir string, retention time.Duration) {
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		log.Printf("❌ Failed to read backup directory: %v", err)
		return
	}

	cutoff := time.Now().Add(-retention)

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		folderPath := filepath.Join(backupDir, entry.Name())
		info, err := os.Stat(folderPath)
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.RemoveAll(folderPath); err != nil {
				log.Printf("❌ Failed to remove old backup %s: %v", folderPath, err)
			} else {
				log.Printf("🗑️ Removed old backup: %s", folderPath)
			}
		}
	}
}
