package store

import (
	"sync"

	"TOURSANDTRAVELS_BACK-END/internal/models"
)

// WishlistStore holds the session's saved tours. Add appends unconditionally;
// deduplication is the caller's job (handlers check Contains first), matching
// the split between the original slice and its consuming components.
type WishlistStore struct {
	mu    sync.RWMutex
	items []models.WishlistItem
}

// NewWishlistStore creates an empty wishlist.
func NewWishlistStore() *WishlistStore {
	return &WishlistStore{}
}

// Items returns the saved tours in insertion order.
func (s *WishlistStore) Items() []models.WishlistItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.WishlistItem, len(s.items))
	copy(out, s.items)
	return out
}

// Contains reports whether a tour identifier is already saved.
func (s *WishlistStore) Contains(tourID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.items {
		if it.ID == tourID {
			return true
		}
	}
	return false
}

// Add appends an item without checking membership.
func (s *WishlistStore) Add(item models.WishlistItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, item)
}

// Remove filters out items whose tour identifier matches.
func (s *WishlistStore) Remove(tourID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.items[:0]
	for _, it := range s.items {
		if it.ID != tourID {
			kept = append(kept, it)
		}
	}
	s.items = kept
}

// Len reports the number of saved tours, counting duplicates.
func (s *WishlistStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
