package models

// OrderLine is one purchased variant inside an order.
type OrderLine struct {
	ProductID uint   `json:"productId"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
}

// Order is the record posted to and read from the upstream store at checkout.
type Order struct {
	ID       uint        `json:"id,omitempty"`
	Ref      string      `json:"ref,omitempty"`
	UserID   string      `json:"userId"`
	Products []OrderLine `json:"products"`
	Total    float64     `json:"total"`
	Date     string      `json:"date"` // YYYY-MM-DD
	Address  string      `json:"address"`
	Status   string      `json:"status,omitempty"`
}
