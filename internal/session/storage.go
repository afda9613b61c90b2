package session

import "sync"

// Keys stored in a browser session.
const (
	KeyFirstName = "firstName"
	KeyLastName  = "lastName"
	KeyRole      = "role"
	KeyToken     = "token"
)

// Storage is a session-scoped string key/value store, the server-side analogue
// of the browser's sessionStorage.
type Storage interface {
	Get(key string) string
	Set(key, value string)
	Clear()
}

// MemoryStorage is the in-memory Storage used for live sessions. Values do not
// survive process restart, matching session-scoped browser storage.
type MemoryStorage struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStorage creates an empty storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: map[string]string{}}
}

// Get returns the stored value or "" when absent.
func (s *MemoryStorage) Get(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[key]
}

// Set stores a value.
func (s *MemoryStorage) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

// Clear wipes every key.
func (s *MemoryStorage) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = map[string]string{}
}
