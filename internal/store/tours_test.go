package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TOURSANDTRAVELS_BACK-END/internal/models"
)

func TestTourStore_AddListRemove(t *testing.T) {
	s := NewTourStore()
	s.Set(SeedTours())
	require.Equal(t, 4, s.Len())

	s.Add(models.Tour{ID: "5", Title: "City Lights Weekend", Category: models.CategoryCity})
	list := s.List()
	require.Len(t, list, 5)
	assert.Equal(t, "5", list[4].ID, "insertion order is preserved")

	s.Remove("5")
	for _, tour := range s.List() {
		assert.NotEqual(t, "5", tour.ID)
	}
}

func TestTourStore_UpdateReplacesMatching(t *testing.T) {
	s := NewTourStore()
	s.Set(SeedTours())

	tour, ok := s.Get("2")
	require.True(t, ok)
	tour.Price = 999
	tour.IsActive = false
	s.Update(tour)

	got, ok := s.Get("2")
	require.True(t, ok)
	assert.Equal(t, 999.0, got.Price)
	assert.False(t, got.IsActive)

	// Unknown id: no-op, no error.
	s.Update(models.Tour{ID: "missing"})
	assert.Equal(t, 4, s.Len())
}

func TestTourStore_RemoveLeavesBookingsDangling(t *testing.T) {
	st := New(false)
	Seed(st)

	st.Tours.Remove("1")
	_, ok := st.Tours.Get("1")
	assert.False(t, ok)

	// The seed booking for tour 1 still references it.
	b, ok := st.Bookings.Get("1")
	require.True(t, ok)
	assert.Equal(t, "1", b.TourID)
}

func TestTourStore_ListReturnsCopy(t *testing.T) {
	s := NewTourStore()
	s.Set(SeedTours())

	list := s.List()
	list[0].Title = "mutated"

	got, ok := s.Get("1")
	require.True(t, ok)
	assert.Equal(t, "Tropical Paradise Adventure", got.Title)
}
