package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TOURSANDTRAVELS_BACK-END/internal/dto"
	"TOURSANDTRAVELS_BACK-END/internal/middleware"
	"TOURSANDTRAVELS_BACK-END/internal/models"
	"TOURSANDTRAVELS_BACK-END/internal/session"
)

func TestDashboardHandler_AdminSummary(t *testing.T) {
	state := seededState()
	h := NewDashboardHandler(state, NewBookingsHandler(state, testLogger()))

	rec := httptest.NewRecorder()
	h.Admin(rec, httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var out dto.AdminDashboardResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))

	assert.Equal(t, float64(3497), out.Summary.TotalRevenue)
	assert.Equal(t, 3, out.Summary.TotalBookings)
	assert.Equal(t, 4, out.Summary.ActivePackages)
	assert.Equal(t, 3, out.Summary.TotalUsers, "admins do not count as travelers")
	assert.Equal(t, 1, out.Summary.PendingBookings)
	assert.Len(t, out.RecentBookings, 3)
	assert.Equal(t, "3", out.RecentBookings[0].ID, "most recent booking first")
	assert.NotEmpty(t, out.TopTours)
	assert.Len(t, out.StatusCounts, 4)
}

func TestDashboardHandler_AdminReports(t *testing.T) {
	state := seededState()
	h := NewDashboardHandler(state, NewBookingsHandler(state, testLogger()))

	rec := httptest.NewRecorder()
	h.Reports(rec, httptest.NewRequest(http.MethodGet, "/api/admin/reports", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var out dto.AdminReportsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))

	assert.Equal(t, float64(3497), out.TotalRevenue)
	assert.InDelta(t, 1748.5, out.AverageBookingValue, 0.001, "average over paid bookings")
	assert.Len(t, out.CategoryDistribution, 4)
	assert.NotEmpty(t, out.TopDestinations)
	assert.NotEmpty(t, out.MonthlyRevenue)
}

func TestDashboardHandler_TravelerScopedToSession(t *testing.T) {
	state := seededState()
	manager := session.NewManager()
	bookings := NewBookingsHandler(state, testLogger())
	h := NewDashboardHandler(state, bookings)
	handler := middleware.NewResolver(manager).WithSession(middleware.RequireRole(models.RoleUser, h.Traveler))

	req, sid := travelerRequest(t, manager, http.MethodGet, "/api/user/dashboard", "")
	state.Sessions.For(sid).Reviews.Add(models.Review{ID: "r1", TourTitle: "Tropical Paradise Adventure", Rating: 5})

	rec := httptest.NewRecorder()
	handler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var out dto.TravelerDashboardResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))

	assert.Equal(t, 1, out.Summary.TotalBookings, "only John Doe's booking")
	assert.Equal(t, 0, out.Summary.UpcomingTrips, "seeded travel dates are in the past")
	assert.Equal(t, float64(2598), out.Summary.TotalSpent)
	assert.Equal(t, []string{"Maldives"}, out.Summary.CountriesVisited)
	assert.Equal(t, 1, out.Summary.ReviewsGiven, "counts the session's reviews")
	assert.Len(t, out.RecommendedTours, 4)
}
