package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TOURSANDTRAVELS_BACK-END/internal/models"
)

func TestUserStore_SetRecomputesCounters(t *testing.T) {
	s := NewUserStore()
	s.Set(SeedUsers())

	// Three travelers, all active; the admin account is not counted.
	assert.Equal(t, 3, s.TotalUsers())
	assert.Equal(t, 3, s.ActiveUsers())
	assert.Equal(t, 4, s.Len())
}

func TestUserStore_AddAdjustsCounters(t *testing.T) {
	s := NewUserStore()
	s.Set(SeedUsers())

	s.Add(models.User{ID: "user4", Role: models.RoleUser, IsActive: false})
	assert.Equal(t, 4, s.TotalUsers())
	assert.Equal(t, 3, s.ActiveUsers())

	s.Add(models.User{ID: "admin2", Role: models.RoleAdmin, IsActive: true})
	assert.Equal(t, 4, s.TotalUsers())
	assert.Equal(t, 3, s.ActiveUsers())
}

func TestUserStore_UpdateRoleAndActiveBranches(t *testing.T) {
	s := NewUserStore()
	s.Set(SeedUsers())

	u, ok := s.Get("user1")
	require.True(t, ok)

	// Traveler promoted to admin leaves both counters.
	u.Role = models.RoleAdmin
	s.Update(u)
	assert.Equal(t, 2, s.TotalUsers())
	assert.Equal(t, 2, s.ActiveUsers())

	// Demoted back while inactive: counted total, not active.
	u.Role = models.RoleUser
	u.IsActive = false
	s.Update(u)
	assert.Equal(t, 3, s.TotalUsers())
	assert.Equal(t, 2, s.ActiveUsers())

	// Active flag flip within the traveler role.
	u.IsActive = true
	s.Update(u)
	assert.Equal(t, 3, s.ActiveUsers())

	// Nothing relevant changed: counters hold.
	u.Phone = "+1999999999"
	s.Update(u)
	assert.Equal(t, 3, s.TotalUsers())
	assert.Equal(t, 3, s.ActiveUsers())
}

func TestUserStore_UpdateUnknownIDIsNoop(t *testing.T) {
	s := NewUserStore()
	s.Set(SeedUsers())

	s.Update(models.User{ID: "missing", Role: models.RoleUser, IsActive: true})
	assert.Equal(t, 3, s.TotalUsers())
	assert.Equal(t, 4, s.Len())
}
