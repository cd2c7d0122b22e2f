package state

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/modaline/shopclient-api/models"
)

func TestToggleIsStrictXOR(t *testing.T) {
	s := NewWishlistStore()

	require.True(t, s.Toggle("u1", 1))
	require.True(t, s.Contains("u1", 1))

	require.False(t, s.Toggle("u1", 1))
	require.False(t, s.Contains("u1", 1))
	require.Empty(t, s.EntriesFor("u1"))
}

func TestToggleAfterSetEmpty(t *testing.T) {
	s := NewWishlistStore()
	s.Toggle("u1", 1)

	s.Set([]models.WishlistEntry{})
	require.True(t, s.Toggle("u1", 2))

	entries := s.EntriesFor("u1")
	require.Len(t, entries, 1)
	require.Equal(t, uint(2), entries[0].ProductID)
}

func TestEntriesScopedByUser(t *testing.T) {
	s := NewWishlistStore()
	s.Toggle("u1", 1)
	s.Toggle("u2", 1)
	s.Toggle("u2", 2)

	require.Len(t, s.EntriesFor("u1"), 1)
	require.Len(t, s.EntriesFor("u2"), 2)
	require.Len(t, s.Entries(), 3)

	s.ClearUser("u2")
	require.Empty(t, s.EntriesFor("u2"))
	require.Len(t, s.EntriesFor("u1"), 1)
}
