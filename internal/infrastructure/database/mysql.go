package database

import (
	"fmt"
	"log"
	"os"

	"github.com/KelwinHenrique/garfai-be/internal/domain/entities"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// ConnectMySQL opens the gorm connection using environment variables.
//
// Supported env vars (local-friendly):
//   - DB_DSN (full DSN; overrides everything else)
//   - DB_HOST (default: localhost), DB_PORT (default: 3306)
//   - DB_USER (default: root), DB_PASSWORD, DB_NAME (default: garfai)
func ConnectMySQL() *gorm.DB {
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			getenvDefault("DB_USER", "root"),
			os.Getenv("DB_PASSWORD"),
			getenvDefault("DB_HOST", "localhost"),
			getenvDefault("DB_PORT", "3306"),
			getenvDefault("DB_NAME", "garfai"),
		)
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	return db
}

// SyncDatabase migrates the full schema. Parents are listed before children so
// the FK constraints (CASCADE on order lines and catalog rows, SET NULL on
// catalog back-references) can be created in order.
func SyncDatabase(db *gorm.DB) {
	if err := db.AutoMigrate(
		&entities.Environment{},
		&entities.Client{},
		&entities.ClientAddress{},
		&entities.Menu{},
		&entities.MenuCategory{},
		&entities.Item{},
		&entities.ProductInfo{},
		&entities.SellingOption{},
		&entities.Choice{},
		&entities.GarnishItem{},
		&entities.ImageProcessingJob{},
		&entities.Order{},
		&entities.OrderItem{},
		&entities.OrderChoice{},
		&entities.OrderGarnishItem{},
	); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}
	log.Println("Database synced successfully.")
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
