package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/modaline/shopclient-api/catalog"
	"github.com/modaline/shopclient-api/models"
)

// GetProducts proxies the upstream catalog. Optional filters:
// ?q= case-insensitive title search, ?category= category id.
// GET /user/products
func GetProducts(cat *catalog.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := cat.Products(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch products"})
			return
		}

		q := strings.ToLower(c.Query("q"))
		categoryParam := c.Query("category")

		var categoryID uint
		if categoryParam != "" {
			id, err := strconv.ParseUint(categoryParam, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
				return
			}
			categoryID = uint(id)
		}

		filtered := []models.Product{}
		for _, p := range products {
			if q != "" && !strings.Contains(strings.ToLower(p.Title), q) {
				continue
			}
			if categoryID != 0 && p.CategoryID != categoryID {
				continue
			}
			filtered = append(filtered, p)
		}

		c.JSON(http.StatusOK, filtered)
	}
}

// GetProductByID returns a single catalog product.
// GET /user/products/:id
func GetProductByID(cat *catalog.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		product, err := cat.Product(c.Request.Context(), uint(id))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// GetCategories lists the upstream categories.
// GET /user/categories
func GetCategories(cat *catalog.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := cat.Categories(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}
