package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/modaline/shopclient-api/catalog"
	cartControllers "github.com/modaline/shopclient-api/controllers/cart"
	orderControllers "github.com/modaline/shopclient-api/controllers/order"
	"github.com/modaline/shopclient-api/middleware"
	"github.com/modaline/shopclient-api/state"
)

// SetupOrderRoutes registers checkout and order history endpoints.
func SetupOrderRoutes(r *gin.Engine, cart *state.CartStore, cat *catalog.Client, db *gorm.DB) {
	notify := cartControllers.SummaryNotifier(cart, cat)
	orderGroup := r.Group("/user/orders")
	orderGroup.Use(middleware.ValidateToken)
	{
		orderGroup.POST("/", orderControllers.Checkout(cart, cat, db, notify)) // POST /user/orders
		orderGroup.GET("/", orderControllers.GetUserOrders(cat))        // GET /user/orders
		orderGroup.GET("/:id", orderControllers.GetOrderByID(cat))      // GET /user/orders/:id
	}
}
