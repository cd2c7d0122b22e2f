package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/modaline/shopclient-api/catalog"
	cartControllers "github.com/modaline/shopclient-api/controllers/cart"
	productcontroller "github.com/modaline/shopclient-api/controllers/product"
	userControllers "github.com/modaline/shopclient-api/controllers/user"
	wishlistControllers "github.com/modaline/shopclient-api/controllers/wishlist"
	"github.com/modaline/shopclient-api/middleware"
	"github.com/modaline/shopclient-api/state"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, cart *state.CartStore, wishlist *state.WishlistStore, cat *catalog.Client, db *gorm.DB) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("/", userControllers.GetUser(cat))    // GET /user/
		userGroup.PUT("/", userControllers.UpdateUser(cat)) // PUT /user/

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(cart))                          // GET /user/cart
			cartGroup.POST("/", cartControllers.AddCartItem(cart, cat, db))                // POST /user/cart
			cartGroup.PUT("/", cartControllers.UpdateCartItem(cart, cat, db))              // PUT /user/cart
			cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(cart, cat, db)) // DELETE /user/cart/:product_id
			cartGroup.DELETE("/", cartControllers.ClearUserCart(cart, cat, db))            // DELETE /user/cart
			cartGroup.GET("/summary", cartControllers.GetCartSummary(cart, cat))           // GET /user/cart/summary
			cartGroup.GET("/ws", cartControllers.CartWebSocketHandler(cart, cat))          // GET /user/cart/ws
		}

		// ──────────────── Wishlist ────────────────
		wishlistGroup := userGroup.Group("/wishlist")
		{
			wishlistGroup.GET("/", wishlistControllers.GetWishlist(wishlist))         // GET /user/wishlist
			wishlistGroup.POST("/", wishlistControllers.ToggleWishlist(wishlist, db)) // POST /user/wishlist
		}

		// ──────────────── Browse Products ────────────────
		userGroup.GET("/products", productcontroller.GetProducts(cat))        // GET /user/products
		userGroup.GET("/products/:id", productcontroller.GetProductByID(cat)) // GET /user/products/:id

		// ──────────────── Browse Categories ────────────────
		userGroup.GET("/categories", productcontroller.GetCategories(cat)) // GET /user/categories
	}
}
