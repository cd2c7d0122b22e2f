package state

import (
	"sync"

	"github.com/modaline/shopclient-api/models"
)

// WishlistStore is a set of (user, product) pairs. Toggle is a strict XOR on
// membership, so duplicates cannot appear as long as mutations go through
// Toggle or Set.
type WishlistStore struct {
	mu      sync.Mutex
	entries []models.WishlistEntry
}

func NewWishlistStore() *WishlistStore {
	return &WishlistStore{}
}

// Set replaces all entries wholesale.
func (s *WishlistStore) Set(entries []models.WishlistEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append([]models.WishlistEntry(nil), entries...)
}

// Toggle removes the entry if present, otherwise appends it. Returns true if
// the product is on the wishlist after the call.
func (s *WishlistStore) Toggle(userID string, productID uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := models.WishKey{UserID: userID, ProductID: productID}
	for i, e := range s.entries {
		if e.Key() == key {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return false
		}
	}
	s.entries = append(s.entries, models.WishlistEntry{UserID: userID, ProductID: productID})
	return true
}

// Contains reports membership for one (user, product) pair.
func (s *WishlistStore) Contains(userID string, productID uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := models.WishKey{UserID: userID, ProductID: productID}
	for _, e := range s.entries {
		if e.Key() == key {
			return true
		}
	}
	return false
}

// ClearUser drops one user's entries.
func (s *WishlistStore) ClearUser(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.entries[:0]
	for _, e := range s.entries {
		if e.UserID != userID {
			kept = append(kept, e)
		}
	}
	s.entries = kept
}

// Entries returns a copy of every entry.
func (s *WishlistStore) Entries() []models.WishlistEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.WishlistEntry(nil), s.entries...)
}

// EntriesFor returns a copy of one user's entries.
func (s *WishlistStore) EntriesFor(userID string) []models.WishlistEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.WishlistEntry{}
	for _, e := range s.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out
}
