package handlers

import (
	"net/http"
	"time"

	"TOURSANDTRAVELS_BACK-END/internal/dto"
	"TOURSANDTRAVELS_BACK-END/internal/models"
	"TOURSANDTRAVELS_BACK-END/internal/reports"
	"TOURSANDTRAVELS_BACK-END/internal/store"
	"TOURSANDTRAVELS_BACK-END/internal/utils"
)

// DashboardHandler serves the derived admin and traveler dashboard views.
type DashboardHandler struct {
	state    *store.State
	bookings *BookingsHandler
}

// NewDashboardHandler creates a new DashboardHandler instance
func NewDashboardHandler(state *store.State, bookings *BookingsHandler) *DashboardHandler {
	return &DashboardHandler{state: state, bookings: bookings}
}

// Admin returns the admin dashboard view
// @Summary Admin dashboard
// @Description Stat summary, recent bookings, top tours, and the status breakdown
// @Tags admin
// @Produce json
// @Success 200 {object} dto.AdminDashboardResponse
// @Router /api/admin/dashboard [get]
func (h *DashboardHandler) Admin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	tours := h.state.Tours.List()
	bookings := h.state.Bookings.List()

	summary := reports.AdminDashboard(tours, bookings, h.state.Users.List())
	// The dashboard shows the running revenue accumulator, which can lag the
	// derived paid sum after deletions when reconciliation is off.
	summary.TotalRevenue = h.state.Bookings.TotalRevenue()

	top := reports.TopTours(tours, bookings, 5)
	topTours := make([]dto.TopTourResponse, 0, len(top))
	for _, t := range top {
		topTours = append(topTours, dto.TopTourResponse{
			Tour:         dto.TourFromModel(t.Tour),
			BookingCount: t.BookingCount,
		})
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.AdminDashboardResponse{
		Summary:        summary,
		RecentBookings: dto.BookingsFromModels(reports.RecentBookings(bookings, 5)),
		TopTours:       topTours,
		StatusCounts:   reports.BookingStatusCounts(bookings),
	})
}

// Reports returns the reports & analytics view
// @Summary Admin reports
// @Description Revenue, category distribution, destination ranking, and monthly trend
// @Tags admin
// @Produce json
// @Success 200 {object} dto.AdminReportsResponse
// @Router /api/admin/reports [get]
func (h *DashboardHandler) Reports(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	tours := h.state.Tours.List()
	bookings := h.state.Bookings.List()

	utils.WriteJSONResponse(w, http.StatusOK, dto.AdminReportsResponse{
		TotalRevenue:         reports.TotalRevenue(bookings),
		AverageBookingValue:  reports.AverageBookingValue(bookings),
		CategoryDistribution: reports.CategoryDistribution(tours),
		TopDestinations:      reports.TopDestinations(tours, bookings, 5),
		StatusCounts:         reports.BookingStatusCounts(bookings),
		MonthlyRevenue:       reports.MonthlyRevenue(bookings),
	})
}

// Traveler returns the traveler dashboard view, scoped to the session's
// bookings.
// @Summary Traveler dashboard
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.TravelerDashboardResponse
// @Router /api/user/dashboard [get]
func (h *DashboardHandler) Traveler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	mine := h.bookings.sessionBookings(r)
	var reviews []models.Review
	if sess, ok := sessionState(h.state, r); ok {
		reviews = sess.Reviews.Items()
	}
	summary := reports.TravelerDashboard(mine, reviews, time.Now())

	utils.WriteJSONResponse(w, http.StatusOK, dto.TravelerDashboardResponse{
		Summary:          summary,
		RecentBookings:   dto.BookingsFromModels(reports.RecentBookings(mine, 3)),
		RecommendedTours: dto.ToursFromModels(reports.RecommendedTours(h.state.Tours.List(), 4)),
	})
}
