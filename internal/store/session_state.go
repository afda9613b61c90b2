package store

import "sync"

// SessionState is the per-browser-session slice of application state: the saved
// tours and written reviews belong to one browser, not to the process. The
// catalog, bookings and user directory stay shared.
type SessionState struct {
	Wishlist *WishlistStore
	Reviews  *ReviewStore
}

// SessionStates hands out SessionState instances keyed by the opaque session
// identifier, creating them on first use and dropping them on logout.
type SessionStates struct {
	mu   sync.Mutex
	byID map[string]*SessionState
}

// NewSessionStates creates an empty registry.
func NewSessionStates() *SessionStates {
	return &SessionStates{byID: map[string]*SessionState{}}
}

// For returns the session's state, creating it on demand.
func (s *SessionStates) For(id string) *SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.byID[id]
	if !ok {
		st = &SessionState{
			Wishlist: NewWishlistStore(),
			Reviews:  NewReviewStore(),
		}
		s.byID[id] = st
	}
	return st
}

// Drop forgets a session's state entirely.
func (s *SessionStates) Drop(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byID, id)
}

// Len reports the number of sessions holding state.
func (s *SessionStates) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byID)
}
