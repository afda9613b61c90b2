package store

import (
	"sync"

	"TOURSANDTRAVELS_BACK-END/internal/models"
)

// TourStore holds the tour catalog in insertion order. It is the source of truth
// for availability flags and pricing. All operations are total: updates and
// removals of unknown identifiers are no-ops, and Add does not check the caller's
// identifier for collisions.
type TourStore struct {
	mu    sync.RWMutex
	tours []models.Tour
}

// NewTourStore creates an empty catalog.
func NewTourStore() *TourStore {
	return &TourStore{}
}

// List returns all tours in insertion order.
func (s *TourStore) List() []models.Tour {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Tour, len(s.tours))
	copy(out, s.tours)
	return out
}

// Get looks up a tour by identifier.
func (s *TourStore) Get(id string) (models.Tour, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tours {
		if t.ID == id {
			return t, true
		}
	}
	return models.Tour{}, false
}

// Set replaces the whole catalog.
func (s *TourStore) Set(tours []models.Tour) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tours = append([]models.Tour(nil), tours...)
}

// Add appends a tour. The caller supplies a fresh identifier.
func (s *TourStore) Add(t models.Tour) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tours = append(s.tours, t)
}

// Update replaces the tour whose identifier matches; unknown ids are ignored.
func (s *TourStore) Update(t models.Tour) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tours {
		if s.tours[i].ID == t.ID {
			s.tours[i] = t
			return
		}
	}
}

// Remove filters out the tour with the given identifier. Bookings and wishlist
// entries that reference it are left untouched.
func (s *TourStore) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.tours[:0]
	for _, t := range s.tours {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.tours = kept
}

// Len reports the number of tours.
func (s *TourStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tours)
}
