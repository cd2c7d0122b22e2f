// Package state holds the in-memory cart and wishlist stores plus the cart
// pricing calculator. Stores keep entries for every user; callers filter by
// user id on read.
package state

import (
	"sync"

	"github.com/modaline/shopclient-api/models"
)

// CartStore is an ordered collection of cart lines. At most one line exists
// per (user, product, size, color) identity; Add merges into an existing line,
// Update rewrites quantity in place or moves the line when the variant
// changes. All operations are serialized on one mutex because the merge logic
// is read-modify-write.
type CartStore struct {
	mu          sync.Mutex
	items       []models.CartItem
	mergeOnMove bool
}

// CartOption configures a CartStore at construction.
type CartOption func(*CartStore)

// WithMergeOnMove makes a variant-changing Update merge into an existing line
// at the destination identity instead of appending a duplicate. The default
// (append unconditionally) matches the historical behavior clients rely on.
func WithMergeOnMove() CartOption {
	return func(s *CartStore) { s.mergeOnMove = true }
}

func NewCartStore(opts ...CartOption) *CartStore {
	s := &CartStore{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Set replaces the whole backing sequence. No validation; used to hydrate
// from a snapshot.
func (s *CartStore) Set(items []models.CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]models.CartItem(nil), items...)
}

// Add merges qty into the line with the same identity, or appends a new line.
// Quantity is not validated here; callers guard qty >= 1 at the boundary.
// Always mutates, so the did-mutate indicator is always true.
func (s *CartStore) Add(userID string, productID uint, size, color string, qty int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := models.VariantKey{UserID: userID, ProductID: productID, Size: size, Color: color}
	for i := range s.items {
		if s.items[i].Key() == key {
			s.items[i].Quantity += qty
			return true
		}
	}
	s.items = append(s.items, models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Size:      size,
		Color:     color,
		Quantity:  qty,
	})
	return true
}

// Update changes a line identified by its old variant. With an unchanged
// variant the quantity is set absolutely (no-op if the line is missing). With
// a changed variant the old line is removed and a new one appended; the
// append happens even when a line already exists at the new identity, which
// can leave two lines with the same key. That oddity is kept on purpose —
// see WithMergeOnMove for the alternative. Returns whether state changed.
func (s *CartStore) Update(userID string, productID uint, oldSize, oldColor, size, color string, qty int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if oldSize == size && oldColor == color {
		key := models.VariantKey{UserID: userID, ProductID: productID, Size: size, Color: color}
		for i := range s.items {
			if s.items[i].Key() == key {
				s.items[i].Quantity = qty
				return true
			}
		}
		return false
	}

	oldKey := models.VariantKey{UserID: userID, ProductID: productID, Size: oldSize, Color: oldColor}
	kept := s.items[:0]
	for _, it := range s.items {
		if it.Key() != oldKey {
			kept = append(kept, it)
		}
	}
	s.items = kept

	if s.mergeOnMove {
		newKey := models.VariantKey{UserID: userID, ProductID: productID, Size: size, Color: color}
		for i := range s.items {
			if s.items[i].Key() == newKey {
				s.items[i].Quantity += qty
				return true
			}
		}
	}
	s.items = append(s.items, models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Size:      size,
		Color:     color,
		Quantity:  qty,
	})
	return true
}

// Remove deletes the line with the given identity. Missing lines are a silent
// no-op; the return value reports whether anything was removed.
func (s *CartStore) Remove(userID string, productID uint, size, color string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := models.VariantKey{UserID: userID, ProductID: productID, Size: size, Color: color}
	kept := s.items[:0]
	removed := false
	for _, it := range s.items {
		if it.Key() == key {
			removed = true
			continue
		}
		kept = append(kept, it)
	}
	s.items = kept
	return removed
}

// Clear empties the whole store, every user included.
func (s *CartStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// ClearUser drops all lines owned by one user. The HTTP surface uses this
// instead of Clear because the store is shared across users.
func (s *CartStore) ClearUser(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.items[:0]
	for _, it := range s.items {
		if it.UserID != userID {
			kept = append(kept, it)
		}
	}
	s.items = kept
}

// Items returns a copy of every line in insertion order.
func (s *CartStore) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.CartItem(nil), s.items...)
}

// ItemsFor returns a copy of one user's lines in insertion order.
func (s *CartStore) ItemsFor(userID string) []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.CartItem{}
	for _, it := range s.items {
		if it.UserID == userID {
			out = append(out, it)
		}
	}
	return out
}
