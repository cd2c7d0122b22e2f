package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/modaline/shopclient-api/catalog"
	"github.com/modaline/shopclient-api/state"
)

// SetupRoutes is the single entry-point that wires up Auth, User, Order, and
// Admin route groups.
func SetupRoutes(r *gin.Engine, cart *state.CartStore, wishlist *state.WishlistStore, cat *catalog.Client, db *gorm.DB) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, cat)

	// User routes (JWT-protected)
	SetupUserRoutes(r, cart, wishlist, cat, db)

	// Order routes (JWT-protected)
	SetupOrderRoutes(r, cart, cat, db)

	// Admin routes (API-key-protected)
	SetupAdminRoutes(r, cart, wishlist, cat)
}
