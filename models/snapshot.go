package models

import "time"

// CartSnapshotItem is the persisted form of a cart line. Snapshots are
// replaced wholesale on every save; row identity carries no meaning beyond the
// primary key gorm needs.
type CartSnapshotItem struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    string `gorm:"index"`
	ProductID uint
	Size      string
	Color     string
	Quantity  int
	SavedAt   time.Time
}

// WishlistSnapshotItem is the persisted form of a wishlist entry.
type WishlistSnapshotItem struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    string `gorm:"index"`
	ProductID uint
	SavedAt   time.Time
}
