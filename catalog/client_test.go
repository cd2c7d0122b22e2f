package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/modaline/shopclient-api/models"
)

func newTestServer(t *testing.T) (*httptest.Server, *Client) {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /products", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.Product{
			{ID: 1, Title: "Shirt", Price: 10},
			{ID: 2, Title: "Shoes", Price: 25},
		})
	})
	mux.HandleFunc("GET /products/1", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.Product{ID: 1, Title: "Shirt", Price: 10})
	})
	mux.HandleFunc("GET /orders", func(w http.ResponseWriter, r *http.Request) {
		orders := []models.Order{
			{ID: 1, UserID: "u1", Total: 55},
			{ID: 2, UserID: "u2", Total: 20},
		}
		if uid := r.URL.Query().Get("userId"); uid != "" {
			filtered := orders[:0]
			for _, o := range orders {
				if o.UserID == uid {
					filtered = append(filtered, o)
				}
			}
			orders = filtered
		}
		json.NewEncoder(w).Encode(orders)
	})
	mux.HandleFunc("POST /orders", func(w http.ResponseWriter, r *http.Request) {
		var o models.Order
		require.NoError(t, json.NewDecoder(r.Body).Decode(&o))
		o.ID = 7
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(o)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, New(srv.URL)
}

func TestProducts(t *testing.T) {
	_, c := newTestServer(t)

	products, err := c.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	require.Equal(t, 25.0, products[1].Price)
}

func TestProductByID(t *testing.T) {
	_, c := newTestServer(t)

	p, err := c.Product(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "Shirt", p.Title)

	_, err = c.Product(context.Background(), 99)
	require.Error(t, err)
}

func TestOrdersByUser(t *testing.T) {
	_, c := newTestServer(t)

	orders, err := c.OrdersByUser(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Equal(t, "u1", orders[0].UserID)
}

func TestCreateOrder(t *testing.T) {
	_, c := newTestServer(t)

	created, err := c.CreateOrder(context.Background(), models.Order{
		UserID:   "u1",
		Products: []models.OrderLine{{ProductID: 1, Size: "M", Color: "Red", Quantity: 2}},
		Total:    30,
		Date:     "2026-08-29",
	})
	require.NoError(t, err)
	require.Equal(t, uint(7), created.ID)
	require.Equal(t, "u1", created.UserID)
}
