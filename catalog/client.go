// Package catalog talks to the upstream REST store that owns products,
// categories, users and orders. The service treats it as a point-in-time
// snapshot source: no retries, no caching, errors leave local state untouched.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/modaline/shopclient-api/models"
)

type Client struct {
	baseURL string
	hc      *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("catalog: %s %s: unexpected status %d", method, path, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) Products(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, "/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) Product(ctx context.Context, id uint) (models.Product, error) {
	var product models.Product
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, &product)
	return product, err
}

func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.do(ctx, http.MethodGet, "/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) Users(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, http.MethodGet, "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) User(ctx context.Context, id string) (models.User, error) {
	var user models.User
	err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(id), nil, &user)
	return user, err
}

func (c *Client) CreateUser(ctx context.Context, u models.User) (models.User, error) {
	var created models.User
	err := c.do(ctx, http.MethodPost, "/users", u, &created)
	return created, err
}

// UpdateUser patches only the supplied fields on the upstream record.
func (c *Client) UpdateUser(ctx context.Context, id string, patch map[string]any) (models.User, error) {
	var updated models.User
	err := c.do(ctx, http.MethodPatch, "/users/"+url.PathEscape(id), patch, &updated)
	return updated, err
}

func (c *Client) CreateOrder(ctx context.Context, o models.Order) (models.Order, error) {
	var created models.Order
	err := c.do(ctx, http.MethodPost, "/orders", o, &created)
	return created, err
}

func (c *Client) Orders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.do(ctx, http.MethodGet, "/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) OrdersByUser(ctx context.Context, userID string) ([]models.Order, error) {
	var orders []models.Order
	if err := c.do(ctx, http.MethodGet, "/orders?userId="+url.QueryEscape(userID), nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) Order(ctx context.Context, id uint) (models.Order, error) {
	var order models.Order
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/orders/%d", id), nil, &order)
	return order, err
}
