// Package storage persists cart and wishlist snapshots so the in-memory
// stores survive restarts. Snapshots are authoritative only at hydration
// time; every save replaces the previous snapshot wholesale.
package storage

import (
	"time"

	"gorm.io/gorm"

	"github.com/modaline/shopclient-api/models"
)

// LoadCart reads the persisted cart snapshot in saved order.
func LoadCart(db *gorm.DB) ([]models.CartItem, error) {
	var rows []models.CartSnapshotItem
	if err := db.Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]models.CartItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, models.CartItem{
			UserID:    r.UserID,
			ProductID: r.ProductID,
			Size:      r.Size,
			Color:     r.Color,
			Quantity:  r.Quantity,
		})
	}
	return items, nil
}

// SaveCart replaces the cart snapshot with the given items in one
// transaction, so a failed save never leaves a partial snapshot behind.
func SaveCart(db *gorm.DB, items []models.CartItem) error {
	now := time.Now()
	rows := make([]models.CartSnapshotItem, 0, len(items))
	for _, it := range items {
		rows = append(rows, models.CartSnapshotItem{
			UserID:    it.UserID,
			ProductID: it.ProductID,
			Size:      it.Size,
			Color:     it.Color,
			Quantity:  it.Quantity,
			SavedAt:   now,
		})
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&models.CartSnapshotItem{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}

// LoadWishlist reads the persisted wishlist snapshot.
func LoadWishlist(db *gorm.DB) ([]models.WishlistEntry, error) {
	var rows []models.WishlistSnapshotItem
	if err := db.Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	entries := make([]models.WishlistEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, models.WishlistEntry{UserID: r.UserID, ProductID: r.ProductID})
	}
	return entries, nil
}

// SaveWishlist replaces the wishlist snapshot wholesale.
func SaveWishlist(db *gorm.DB, entries []models.WishlistEntry) error {
	now := time.Now()
	rows := make([]models.WishlistSnapshotItem, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, models.WishlistSnapshotItem{
			UserID:    e.UserID,
			ProductID: e.ProductID,
			SavedAt:   now,
		})
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&models.WishlistSnapshotItem{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}
