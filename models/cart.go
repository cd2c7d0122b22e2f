package models

// CartItem is one cart line: a product variant plus quantity, owned by a user.
// The store holds lines for every user of the service, so readers must always
// filter by UserID.
type CartItem struct {
	UserID    string `json:"userId"`
	ProductID uint   `json:"productId"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
}

// VariantKey is the identity of a cart line. The cart store keeps at most one
// line per key.
type VariantKey struct {
	UserID    string
	ProductID uint
	Size      string
	Color     string
}

func (i CartItem) Key() VariantKey {
	return VariantKey{UserID: i.UserID, ProductID: i.ProductID, Size: i.Size, Color: i.Color}
}
