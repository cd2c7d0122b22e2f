package cartControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/modaline/shopclient-api/catalog"
	"github.com/modaline/shopclient-api/models"
	"github.com/modaline/shopclient-api/state"
)

func newCatalogServer(t *testing.T) *catalog.Client {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /products", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.Product{
			{ID: 1, Title: "Shirt", Price: 10},
			{ID: 2, Title: "Shoes", Price: 25},
		})
	})
	mux.HandleFunc("GET /products/{id}", func(w http.ResponseWriter, r *http.Request) {
		switch r.PathValue("id") {
		case "1":
			json.NewEncoder(w).Encode(models.Product{ID: 1, Title: "Shirt", Price: 10})
		case "2":
			json.NewEncoder(w).Encode(models.Product{ID: 2, Title: "Shoes", Price: 25})
		default:
			http.NotFound(w, r)
		}
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return catalog.New(srv.URL)
}

func newRouter(store *state.CartStore, cat *catalog.Client, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("user_id", userID) })
	r.GET("/user/cart", GetUserCart(store))
	r.POST("/user/cart", AddCartItem(store, cat, nil))
	r.PUT("/user/cart", UpdateCartItem(store, cat, nil))
	r.DELETE("/user/cart/:product_id", DeleteCartItem(store, cat, nil))
	r.DELETE("/user/cart", ClearUserCart(store, cat, nil))
	r.GET("/user/cart/summary", GetCartSummary(store, cat))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddCartItemMerges(t *testing.T) {
	store := state.NewCartStore()
	r := newRouter(store, newCatalogServer(t), "u1")

	w := doJSON(t, r, http.MethodPost, "/user/cart", AddCartItemInput{ProductID: 1, Size: "M", Color: "Red", Quantity: 2})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/user/cart", AddCartItemInput{ProductID: 1, Size: "M", Color: "Red", Quantity: 3})
	require.Equal(t, http.StatusCreated, w.Code)

	var items []models.CartItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)
	require.Equal(t, 5, items[0].Quantity)
}

func TestAddCartItemUnknownProduct(t *testing.T) {
	store := state.NewCartStore()
	r := newRouter(store, newCatalogServer(t), "u1")

	w := doJSON(t, r, http.MethodPost, "/user/cart", AddCartItemInput{ProductID: 99, Size: "M", Color: "Red", Quantity: 1})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Empty(t, store.ItemsFor("u1"))
}

func TestAddCartItemRejectsZeroQuantity(t *testing.T) {
	store := state.NewCartStore()
	r := newRouter(store, newCatalogServer(t), "u1")

	w := doJSON(t, r, http.MethodPost, "/user/cart", map[string]any{"product_id": 1, "quantity": 0})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateCartItemVariantMove(t *testing.T) {
	store := state.NewCartStore()
	store.Add("u1", 1, "S", "Red", 2)
	r := newRouter(store, newCatalogServer(t), "u1")

	w := doJSON(t, r, http.MethodPut, "/user/cart", UpdateCartItemInput{
		ProductID: 1, OldSize: "S", OldColor: "Red", Size: "M", Color: "Red", Quantity: 2,
	})
	require.Equal(t, http.StatusOK, w.Code)

	items := store.ItemsFor("u1")
	require.Len(t, items, 1)
	require.Equal(t, "M", items[0].Size)
}

func TestDeleteCartItem(t *testing.T) {
	store := state.NewCartStore()
	store.Add("u1", 1, "M", "Red", 2)
	r := newRouter(store, newCatalogServer(t), "u1")

	w := doJSON(t, r, http.MethodDelete, "/user/cart/1?size=M&color=Red", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, store.ItemsFor("u1"))

	w = doJSON(t, r, http.MethodDelete, "/user/cart/1?size=M&color=Red", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestClearUserCartLeavesOtherUsers(t *testing.T) {
	store := state.NewCartStore()
	store.Add("u1", 1, "M", "Red", 2)
	store.Add("u2", 2, "L", "Black", 1)
	r := newRouter(store, newCatalogServer(t), "u1")

	w := doJSON(t, r, http.MethodDelete, "/user/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, store.ItemsFor("u1"))
	require.Len(t, store.ItemsFor("u2"), 1)
}

func TestGetCartSummary(t *testing.T) {
	store := state.NewCartStore()
	store.Add("u1", 1, "M", "Red", 2)  // 2 x 10
	store.Add("u1", 2, "42", "Black", 1) // 1 x 25
	r := newRouter(store, newCatalogServer(t), "u1")

	w := doJSON(t, r, http.MethodGet, "/user/cart/summary", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var summary state.Summary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	require.Equal(t, 45.0, summary.Subtotal)
	require.Equal(t, 10.0, summary.ShippingCost)
	require.Equal(t, 55.0, summary.Total)
}

func TestGetCartSummaryEmpty(t *testing.T) {
	store := state.NewCartStore()
	r := newRouter(store, newCatalogServer(t), "u1")

	w := doJSON(t, r, http.MethodGet, "/user/cart/summary", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var summary state.Summary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	require.Equal(t, state.Summary{}, summary)
}

func TestGetCartFiltersByUser(t *testing.T) {
	store := state.NewCartStore()
	store.Add("u1", 1, "M", "Red", 2)
	store.Add("u2", 1, "M", "Red", 9)
	r := newRouter(store, newCatalogServer(t), "u1")

	w := doJSON(t, r, http.MethodGet, "/user/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var items []models.CartItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)
	require.Equal(t, "u1", items[0].UserID)
}
