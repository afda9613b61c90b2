package session

import (
	"sync"

	"github.com/google/uuid"
)

// Manager hands out per-browser-session contexts keyed by an opaque session id
// carried in a cookie. Sessions are created on first use and dropped on logout.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Context
}

// NewManager creates an empty registry.
func NewManager() *Manager {
	return &Manager{sessions: map[string]*Context{}}
}

// NewID mints a fresh session identifier.
func (m *Manager) NewID() string {
	return uuid.NewString()
}

// Context returns the session's context, creating it on demand.
func (m *Manager) Context(id string) *Context {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.sessions[id]
	if !ok {
		c = NewContext(NewMemoryStorage())
		m.sessions[id] = c
	}
	return c
}

// Drop forgets a session entirely.
func (m *Manager) Drop(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}
