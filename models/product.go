package models

// Product mirrors the catalog record served by the upstream store. Only Price
// matters to the pricing calculator; everything else is passed through to the
// client.
type Product struct {
	ID          uint     `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Image       string   `json:"image"`
	Sizes       []string `json:"sizes"`
	Colors      []string `json:"colors"`
	Quantity    int      `json:"quantity"` // units available upstream
	CategoryID  uint     `json:"categoryId"`
}
