package store

import (
	"sync"

	"TOURSANDTRAVELS_BACK-END/internal/models"
)

// UserStore holds traveler and administrator accounts and maintains two
// counters restricted to role=user: the total number of traveler accounts and
// the number of active ones. Set recomputes both; Add and Update adjust them
// incrementally by comparing old and new role/active combinations.
type UserStore struct {
	mu          sync.RWMutex
	users       []models.User
	totalUsers  int
	activeUsers int
}

// NewUserStore creates an empty directory.
func NewUserStore() *UserStore {
	return &UserStore{}
}

// List returns all accounts in insertion order.
func (s *UserStore) List() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out
}

// Get looks up an account by identifier.
func (s *UserStore) Get(id string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// TotalUsers returns the count of traveler accounts (role=user).
func (s *UserStore) TotalUsers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalUsers
}

// ActiveUsers returns the count of active traveler accounts.
func (s *UserStore) ActiveUsers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeUsers
}

// Set replaces the directory and recomputes both counters.
func (s *UserStore) Set(users []models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append([]models.User(nil), users...)
	s.totalUsers = 0
	s.activeUsers = 0
	for _, u := range s.users {
		if u.Role != models.RoleUser {
			continue
		}
		s.totalUsers++
		if u.IsActive {
			s.activeUsers++
		}
	}
}

// Add appends an account and bumps the counters for traveler roles.
func (s *UserStore) Add(u models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, u)
	if u.Role == models.RoleUser {
		s.totalUsers++
		if u.IsActive {
			s.activeUsers++
		}
	}
}

// Update replaces the account whose identifier matches and adjusts the counters
// for role changes into or out of the traveler role and for active-flag flips
// within it. Unknown ids are ignored.
func (s *UserStore) Update(u models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID != u.ID {
			continue
		}
		old := s.users[i]
		s.users[i] = u
		switch {
		case old.Role == models.RoleUser && u.Role != models.RoleUser:
			s.totalUsers--
			if old.IsActive {
				s.activeUsers--
			}
		case old.Role != models.RoleUser && u.Role == models.RoleUser:
			s.totalUsers++
			if u.IsActive {
				s.activeUsers++
			}
		case u.Role == models.RoleUser && old.IsActive != u.IsActive:
			if u.IsActive {
				s.activeUsers++
			} else {
				s.activeUsers--
			}
		}
		return
	}
}

// Len reports the number of accounts, including administrators.
func (s *UserStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}
