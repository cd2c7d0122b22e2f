package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/modaline/shopclient-api/catalog"
	cartControllers "github.com/modaline/shopclient-api/controllers/cart"
	orderControllers "github.com/modaline/shopclient-api/controllers/order"
	wishlistControllers "github.com/modaline/shopclient-api/controllers/wishlist"
	"github.com/modaline/shopclient-api/middleware"
	"github.com/modaline/shopclient-api/state"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API key.
func SetupAdminRoutes(r *gin.Engine, cart *state.CartStore, wishlist *state.WishlistStore, cat *catalog.Client) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		adminGroup.GET("/carts/:user_id", cartControllers.GetAdminUserCart(cart))                 // GET /admin/carts/:user_id
		adminGroup.GET("/wishlists/:user_id", wishlistControllers.GetAdminUserWishlist(wishlist)) // GET /admin/wishlists/:user_id
		adminGroup.GET("/orders/export", orderControllers.ExportOrdersToExcel(cat))               // GET /admin/orders/export
	}
}
