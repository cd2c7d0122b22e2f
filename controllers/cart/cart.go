package cartControllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/modaline/shopclient-api/catalog"
	"github.com/modaline/shopclient-api/state"
	"github.com/modaline/shopclient-api/storage"
)

type AddCartItemInput struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type UpdateCartItemInput struct {
	ProductID uint   `json:"product_id" binding:"required"`
	OldSize   string `json:"old_size"`
	OldColor  string `json:"old_color"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
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

// persist writes the full cart snapshot. Snapshot failures are logged, not
// surfaced: the in-memory state is already updated and stays authoritative.
func persist(db *gorm.DB, store *state.CartStore) {
	if db == nil {
		return
	}
	if err := storage.SaveCart(db, store.Items()); err != nil {
		log.Printf("⚠️ Failed to save cart snapshot: %v", err)
	}
}

// GET /user/cart
func GetUserCart(store *state.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, store.ItemsFor(userID))
	}
}

// POST /user/cart
func AddCartItem(store *state.CartStore, cat *catalog.Client, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var input AddCartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		// Make sure the product still exists upstream before taking the line.
		if _, err := cat.Product(c.Request.Context(), input.ProductID); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}

		store.Add(userID, input.ProductID, input.Size, input.Color, input.Quantity)
		persist(db, store)
		go pushSummary(cat, store, userID)

		c.JSON(http.StatusCreated, store.ItemsFor(userID))
	}
}

// PUT /user/cart
func UpdateCartItem(store *state.CartStore, cat *catalog.Client, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var input UpdateCartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		changed := store.Update(userID, input.ProductID, input.OldSize, input.OldColor,
			input.Size, input.Color, input.Quantity)
		if changed {
			persist(db, store)
			go pushSummary(cat, store, userID)
		}

		c.JSON(http.StatusOK, store.ItemsFor(userID))
	}
}

// DELETE /user/cart/:product_id?size=&color=
func DeleteCartItem(store *state.CartStore, cat *catalog.Client, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		productIDUint, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
			return
		}

		removed := store.Remove(userID, uint(productIDUint), c.Query("size"), c.Query("color"))
		if !removed {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		persist(db, store)
		go pushSummary(cat, store, userID)

		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// DELETE /user/cart
func ClearUserCart(store *state.CartStore, cat *catalog.Client, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		store.ClearUser(userID)
		persist(db, store)
		go pushSummary(cat, store, userID)

		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// GET /user/cart/summary
func GetCartSummary(store *state.CartStore, cat *catalog.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		items := store.ItemsFor(userID)
		products, err := cat.Products(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch products"})
			return
		}

		summary := state.Summarize(items, state.LookupFromProducts(products))
		c.JSON(http.StatusOK, summary.Rounded())
	}
}

// GET /admin/carts/:user_id
func GetAdminUserCart(store *state.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
			return
		}
		c.JSON(http.StatusOK, store.ItemsFor(userID))
	}
}
