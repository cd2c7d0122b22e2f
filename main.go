package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/modaline/shopclient-api/catalog"
	"github.com/modaline/shopclient-api/models"
	"github.com/modaline/shopclient-api/routes"
	"github.com/modaline/shopclient-api/state"
	"github.com/modaline/shopclient-api/storage"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	catalogURL := os.Getenv("CATALOG_URL")
	if catalogURL == "" {
		log.Fatal("❌ CATALOG_URL is required")
	}
	cat := catalog.New(catalogURL)

	// Init snapshot DB (optional — without it the service runs memory-only)
	db := initDatabase()
	if db != nil {
		if err := db.AutoMigrate(
			&models.CartSnapshotItem{},
			&models.WishlistSnapshotItem{},
		); err != nil {
			log.Fatalf("❌ AutoMigrate failed: %v", err)
		}
	}

	// In-memory state stores
	cartStore := state.NewCartStore()
	wishlistStore := state.NewWishlistStore()
	hydrateStores(db, cartStore, wishlistStore)

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, cartStore, wishlistStore, cat, db)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM snapshot DB connection, or returns nil when
// no database is configured.
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	if host == "" {
		log.Println("⚠️ No snapshot database configured, running memory-only")
		return nil
	}

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"), os.Getenv("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}

// hydrateStores loads the persisted snapshots into the in-memory stores. On
// error the stores stay empty — hydration is all-or-nothing, never partial.
func hydrateStores(db *gorm.DB, cart *state.CartStore, wishlist *state.WishlistStore) {
	if db == nil {
		return
	}

	items, err := storage.LoadCart(db)
	if err != nil {
		log.Printf("⚠️ Failed to load cart snapshot: %v", err)
	} else {
		cart.Set(items)
		log.Printf("✅ Hydrated cart with %d line(s)", len(items))
	}

	entries, err := storage.LoadWishlist(db)
	if err != nil {
		log.Printf("⚠️ Failed to load wishlist snapshot: %v", err)
	} else {
		wishlist.Set(entries)
		log.Printf("✅ Hydrated wishlist with %d entry(ies)", len(entries))
	}
}
