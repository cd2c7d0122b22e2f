package models

// WishlistEntry marks a product as wished by a user. Pure set membership, no
// quantity.
type WishlistEntry struct {
	UserID    string `json:"userId"`
	ProductID uint   `json:"productId"`
}

// WishKey is the identity of a wishlist entry.
type WishKey struct {
	UserID    string
	ProductID uint
}

func (e WishlistEntry) Key() WishKey {
	return WishKey{UserID: e.UserID, ProductID: e.ProductID}
}
