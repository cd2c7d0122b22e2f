package state

import (
	"math"

	"github.com/modaline/shopclient-api/models"
)

// FlatShipping is charged once per non-empty cart.
const FlatShipping = 10

// PriceLookup resolves a product id to its current price. A false return
// means the product is unknown; its lines contribute nothing to the subtotal.
type PriceLookup func(productID uint) (float64, bool)

// Summary is the priced view of a cart.
type Summary struct {
	Subtotal     float64 `json:"subtotal"`
	ShippingCost float64 `json:"shipping_cost"`
	Total        float64 `json:"total"`
}

// Summarize recomputes the summary from scratch on every call. Values are
// summed raw; rounding happens only at the presentation boundary (Rounded).
func Summarize(items []models.CartItem, price PriceLookup) Summary {
	var subtotal float64
	for _, it := range items {
		if p, ok := price(it.ProductID); ok {
			subtotal += p * float64(it.Quantity)
		}
	}
	var shipping float64
	if len(items) > 0 {
		shipping = FlatShipping
	}
	return Summary{
		Subtotal:     subtotal,
		ShippingCost: shipping,
		Total:        subtotal + shipping,
	}
}

// LookupFromProducts builds a PriceLookup from a catalog snapshot.
func LookupFromProducts(products []models.Product) PriceLookup {
	prices := make(map[uint]float64, len(products))
	for _, p := range products {
		prices[p.ID] = p.Price
	}
	return func(id uint) (float64, bool) {
		p, ok := prices[id]
		return p, ok
	}
}

// Round2 rounds to two decimal places for display and order totals.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Rounded returns the summary with every figure rounded for display.
func (s Summary) Rounded() Summary {
	return Summary{
		Subtotal:     Round2(s.Subtotal),
		ShippingCost: Round2(s.ShippingCost),
		Total:        Round2(s.Total),
	}
}
