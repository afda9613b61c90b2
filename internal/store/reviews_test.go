package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TOURSANDTRAVELS_BACK-END/internal/models"
)

func TestReviewStore_AddPrepends(t *testing.T) {
	s := NewReviewStore()
	s.Add(models.Review{ID: "r1", TourTitle: "Mountain Expedition", Rating: 4, ReviewDate: time.Now()})
	s.Add(models.Review{ID: "r2", TourTitle: "Wildlife Safari Experience", Rating: 5, ReviewDate: time.Now()})

	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "r2", items[0].ID, "newest review lists first")
}

func TestReviewStore_UpdateAndRemove(t *testing.T) {
	s := NewReviewStore()
	s.Add(models.Review{ID: "r1", Rating: 3})

	s.Update(models.Review{ID: "r1", Rating: 5, Comment: "better on reflection"})
	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Rating)

	s.Remove("r1")
	assert.Zero(t, s.Len())
}
