package orderControllers

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/modaline/shopclient-api/catalog"
	"github.com/modaline/shopclient-api/models"
	"github.com/modaline/shopclient-api/state"
	"github.com/modaline/shopclient-api/storage"
)

type CheckoutInput struct {
	// Address overrides the one on the user profile; required when the
	// profile has none.
	Address string `json:"address"`
}

func currentUserID(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	userID, ok := userIDVal.(string)
	if !ok || userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}

// generateOrderRef makes a sortable unique reference, e.g.
// 20260829130500-<uuid4>.
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// Checkout prices the user's cart, places the order upstream, then clears the
// user's lines and notifies open cart sockets. The order total is computed
// server-side from the catalog, not taken from the client.
// POST /user/orders
func Checkout(store *state.CartStore, cat *catalog.Client, db *gorm.DB, notify func(userID string)) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		items := store.ItemsFor(userID)
		if len(items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}

		// Body is optional; an absent body means "use the profile address".
		var input CheckoutInput
		if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		address := input.Address
		if address == "" {
			user, err := cat.User(c.Request.Context(), userID)
			if err != nil || user.Address == nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Shipping address is required"})
				return
			}
			address = user.Address.Line()
		}

		products, err := cat.Products(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch products"})
			return
		}
		summary := state.Summarize(items, state.LookupFromProducts(products))

		lines := make([]models.OrderLine, 0, len(items))
		for _, it := range items {
			lines = append(lines, models.OrderLine{
				ProductID: it.ProductID,
				Size:      it.Size,
				Color:     it.Color,
				Quantity:  it.Quantity,
			})
		}

		order := models.Order{
			Ref:      generateOrderRef(),
			UserID:   userID,
			Products: lines,
			Total:    state.Round2(summary.Total),
			Date:     time.Now().Format("2006-01-02"),
			Address:  address,
			Status:   "pending",
		}

		created, err := cat.CreateOrder(c.Request.Context(), order)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to place order"})
			return
		}

		// Order is placed; the cart lines it consumed go away.
		store.ClearUser(userID)
		if db != nil {
			if err := storage.SaveCart(db, store.Items()); err != nil {
				log.Printf("⚠️ Failed to save cart snapshot: %v", err)
			}
		}
		if notify != nil {
			notify(userID)
		}

		c.JSON(http.StatusCreated, created)
	}
}

// GET /user/orders
func GetUserOrders(cat *catalog.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		orders, err := cat.OrdersByUser(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /user/orders/:id
func GetOrderByID(cat *catalog.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}

		order, err := cat.Order(c.Request.Context(), uint(id))
		if err != nil || order.UserID != userID {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
