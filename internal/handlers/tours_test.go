package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TOURSANDTRAVELS_BACK-END/internal/dto"
	"TOURSANDTRAVELS_BACK-END/internal/store"
)

func seededState() *store.State {
	s := store.New(false)
	store.Seed(s)
	return s
}

func TestToursHandler_BrowseCategoryFilter(t *testing.T) {
	h := NewToursHandler(seededState(), testLogger())

	rec := httptest.NewRecorder()
	h.Tours(rec, httptest.NewRequest(http.MethodGet, "/api/tours?category=Beach", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var out dto.TourListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Equal(t, 1, out.Total)
	assert.Equal(t, "Tropical Paradise Adventure", out.Tours[0].Title)
	assert.Equal(t, float64(1299), out.Tours[0].Price)
}

func TestToursHandler_BrowseSearchIsCaseInsensitive(t *testing.T) {
	h := NewToursHandler(seededState(), testLogger())

	rec := httptest.NewRecorder()
	h.Tours(rec, httptest.NewRequest(http.MethodGet, "/api/tours?search=maldives", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var out dto.TourListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, 1, out.Total)
}

func TestToursHandler_DetailNotFound(t *testing.T) {
	h := NewToursHandler(seededState(), testLogger())

	rec := httptest.NewRecorder()
	h.Tours(rec, httptest.NewRequest(http.MethodGet, "/api/tours/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Tour not found")
}

func TestToursHandler_ManageCreate(t *testing.T) {
	state := seededState()
	h := NewToursHandler(state, testLogger())

	body := `{"title":"City Lights","destination":"Japan","price":980,"duration":4,"category":"City","maxGroupSize":10,"isActive":true}`
	rec := httptest.NewRecorder()
	h.Manage(rec, httptest.NewRequest(http.MethodPost, "/api/admin/tours", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	var out dto.TourResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "easy", out.Difficulty, "difficulty defaults when omitted")
	assert.Equal(t, 5, state.Tours.Len())
}

func TestToursHandler_ManageCreateValidation(t *testing.T) {
	h := NewToursHandler(seededState(), testLogger())

	cases := []struct {
		name string
		body string
	}{
		{"missing title", `{"destination":"Japan","price":980,"duration":4,"category":"City","maxGroupSize":10}`},
		{"negative price", `{"title":"X","destination":"Japan","price":-1,"duration":4,"category":"City","maxGroupSize":10}`},
		{"bad category", `{"title":"X","destination":"Japan","price":1,"duration":4,"category":"Space","maxGroupSize":10}`},
		{"bad difficulty", `{"title":"X","destination":"Japan","price":1,"duration":4,"category":"City","maxGroupSize":10,"difficulty":"extreme"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.Manage(rec, httptest.NewRequest(http.MethodPost, "/api/admin/tours", strings.NewReader(tc.body)))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestToursHandler_ManageUpdatePreservesRating(t *testing.T) {
	state := seededState()
	h := NewToursHandler(state, testLogger())

	body := `{"title":"Tropical Paradise Adventure","destination":"Maldives","price":1399,"duration":7,"category":"Beach","maxGroupSize":12,"isActive":true}`
	rec := httptest.NewRecorder()
	h.Manage(rec, httptest.NewRequest(http.MethodPut, "/api/admin/tours/1", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	tour, ok := state.Tours.Get("1")
	require.True(t, ok)
	assert.Equal(t, float64(1399), tour.Price)
	assert.Equal(t, 4.8, tour.Rating)
	assert.Equal(t, 124, tour.ReviewCount)
}

func TestToursHandler_ManageUpdateUnknown(t *testing.T) {
	h := NewToursHandler(seededState(), testLogger())

	body := `{"title":"X","destination":"Y","price":1,"duration":1,"category":"City","maxGroupSize":1}`
	rec := httptest.NewRecorder()
	h.Manage(rec, httptest.NewRequest(http.MethodPut, "/api/admin/tours/nope", strings.NewReader(body)))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestToursHandler_ManageRemoveLeavesBookings(t *testing.T) {
	state := seededState()
	h := NewToursHandler(state, testLogger())

	rec := httptest.NewRecorder()
	h.Manage(rec, httptest.NewRequest(http.MethodDelete, "/api/admin/tours/1", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	_, ok := state.Tours.Get("1")
	assert.False(t, ok)
	// Bookings keep their tour snapshot even after the tour is gone.
	found := false
	for _, b := range state.Bookings.List() {
		if b.TourID == "1" {
			found = true
		}
	}
	assert.True(t, found)
}
