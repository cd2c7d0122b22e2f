package wishlistControllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/modaline/shopclient-api/state"
	"github.com/modaline/shopclient-api/storage"
)

type ToggleWishlistInput struct {
	ProductID uint `json:"product_id" binding:"required"`
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

func persist(db *gorm.DB, store *state.WishlistStore) {
	if db == nil {
		return
	}
	if err := storage.SaveWishlist(db, store.Entries()); err != nil {
		log.Printf("⚠️ Failed to save wishlist snapshot: %v", err)
	}
}

// GET /user/wishlist
func GetWishlist(store *state.WishlistStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, store.EntriesFor(userID))
	}
}

// POST /user/wishlist
func ToggleWishlist(store *state.WishlistStore, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var input ToggleWishlistInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		inWishlist := store.Toggle(userID, input.ProductID)
		persist(db, store)

		c.JSON(http.StatusOK, gin.H{
			"product_id":  input.ProductID,
			"in_wishlist": inWishlist,
			"items":       store.EntriesFor(userID),
		})
	}
}

// GET /admin/wishlists/:user_id
func GetAdminUserWishlist(store *state.WishlistStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
			return
		}
		c.JSON(http.StatusOK, store.EntriesFor(userID))
	}
}
