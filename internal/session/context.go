package session

import (
	"sync"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the claimed display identity of the session's user. It is
// client-trusted data with no cryptographic integrity; nothing here grants a
// security guarantee.
type Identity struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

// Context is the per-session identity state machine. It has two states:
// anonymous and identified. Load transitions to identified only when the first
// name, last name and role keys are all present in storage; Clear returns to
// anonymous and wipes the storage.
type Context struct {
	storage Storage

	mu       sync.RWMutex
	identity *Identity
}

// NewContext builds a context over storage and performs the startup Load.
func NewContext(storage Storage) *Context {
	c := &Context{storage: storage}
	c.Load()
	return c
}

// Load re-reads the identity keys from storage. Any missing key leaves the
// context anonymous.
func (c *Context) Load() {
	firstName := c.storage.Get(KeyFirstName)
	lastName := c.storage.Get(KeyLastName)
	role := c.storage.Get(KeyRole)

	c.mu.Lock()
	defer c.mu.Unlock()
	if firstName != "" && lastName != "" && role != "" {
		c.identity = &Identity{FirstName: firstName, LastName: lastName, Role: role}
	} else {
		c.identity = nil
	}
}

// Identity returns the current identity and whether the context is identified.
func (c *Context) Identity() (Identity, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.identity == nil {
		return Identity{}, false
	}
	return *c.identity, true
}

// Establish writes the identity keys and token after a successful login and
// transitions to identified.
func (c *Context) Establish(firstName, lastName, role, token string) {
	c.storage.Set(KeyFirstName, firstName)
	c.storage.Set(KeyLastName, lastName)
	c.storage.Set(KeyRole, role)
	c.storage.Set(KeyToken, token)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.identity = &Identity{FirstName: firstName, LastName: lastName, Role: role}
}

// Clear wipes the session storage and returns to anonymous.
func (c *Context) Clear() {
	c.storage.Clear()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.identity = nil
}

// Token returns the raw bearer token stored at login, "" when absent. The token
// is forwarded to the upstream API as-is; it is never validated here.
func (c *Context) Token() string {
	return c.storage.Get(KeyToken)
}

// PeekTokenClaims decodes the stored token's claims without verifying its
// signature. Display metadata only.
func (c *Context) PeekTokenClaims() (jwt.MapClaims, bool) {
	token := c.Token()
	if token == "" {
		return nil, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, false
	}
	return claims, true
}
