package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContext_LoadIdentifiedWhenAllKeysPresent(t *testing.T) {
	storage := NewMemoryStorage()
	storage.Set(KeyFirstName, "John")
	storage.Set(KeyLastName, "Doe")
	storage.Set(KeyRole, "user")

	c := NewContext(storage)
	id, ok := c.Identity()
	require.True(t, ok)
	assert.Equal(t, Identity{FirstName: "John", LastName: "Doe", Role: "user"}, id)
}

func TestContext_AnonymousWhenAnyKeyMissing(t *testing.T) {
	cases := map[string][]string{
		"no keys":         {},
		"missing role":    {KeyFirstName, KeyLastName},
		"missing names":   {KeyRole},
		"only first name": {KeyFirstName},
	}
	for name, keys := range cases {
		t.Run(name, func(t *testing.T) {
			storage := NewMemoryStorage()
			for _, k := range keys {
				storage.Set(k, "x")
			}
			c := NewContext(storage)
			_, ok := c.Identity()
			assert.False(t, ok)
		})
	}
}

func TestContext_EstablishAndClear(t *testing.T) {
	storage := NewMemoryStorage()
	c := NewContext(storage)

	c.Establish("Jane", "Smith", "admin", "tok-123")
	id, ok := c.Identity()
	require.True(t, ok)
	assert.Equal(t, "admin", id.Role)
	assert.Equal(t, "tok-123", c.Token())
	assert.Equal(t, "Jane", storage.Get(KeyFirstName))

	c.Clear()
	_, ok = c.Identity()
	assert.False(t, ok)
	assert.Empty(t, c.Token())
	assert.Empty(t, storage.Get(KeyRole), "logout clears session storage")
}

func TestContext_PeekTokenClaims(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "jane@example.com",
		"exp":   jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	// Signed with a key the context never sees: the peek must still succeed
	// because the claims are read without verification.
	signed, err := token.SignedString([]byte("upstream-only-secret"))
	require.NoError(t, err)

	c := NewContext(NewMemoryStorage())
	c.Establish("Jane", "Smith", "user", signed)

	claims, ok := c.PeekTokenClaims()
	require.True(t, ok)
	assert.Equal(t, "jane@example.com", claims["email"])

	c.Establish("Jane", "Smith", "user", "not-a-jwt")
	_, ok = c.PeekTokenClaims()
	assert.False(t, ok)
}

func TestManager_SessionLifecycle(t *testing.T) {
	m := NewManager()
	id := m.NewID()

	c := m.Context(id)
	c.Establish("John", "Doe", "user", "tok")
	assert.Same(t, c, m.Context(id))

	m.Drop(id)
	_, ok := m.Context(id).Identity()
	assert.False(t, ok, "dropped session starts over anonymous")
}
