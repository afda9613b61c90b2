package store

import (
	"sync"

	"TOURSANDTRAVELS_BACK-END/internal/models"
)

// ReviewStore holds the session's written reviews. New reviews are prepended so
// the most recent one lists first, as the reviews page does. The dashboards only
// read from it.
type ReviewStore struct {
	mu      sync.RWMutex
	reviews []models.Review
}

// NewReviewStore creates an empty review list.
func NewReviewStore() *ReviewStore {
	return &ReviewStore{}
}

// Items returns the reviews, most recent first.
func (s *ReviewStore) Items() []models.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Review, len(s.reviews))
	copy(out, s.reviews)
	return out
}

// Add prepends a review.
func (s *ReviewStore) Add(r models.Review) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviews = append([]models.Review{r}, s.reviews...)
}

// Update replaces the review whose identifier matches; unknown ids are ignored.
func (s *ReviewStore) Update(r models.Review) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.reviews {
		if s.reviews[i].ID == r.ID {
			s.reviews[i] = r
			return
		}
	}
}

// Remove filters out the review with the given identifier.
func (s *ReviewStore) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.reviews[:0]
	for _, r := range s.reviews {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	s.reviews = kept
}

// Len reports the number of reviews.
func (s *ReviewStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.reviews)
}
