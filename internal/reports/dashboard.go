package reports

import (
	"time"

	"TOURSANDTRAVELS_BACK-END/internal/models"
)

// AdminSummary is the admin dashboard's stat row.
type AdminSummary struct {
	TotalRevenue    float64 `json:"totalRevenue"`
	TotalBookings   int     `json:"totalBookings"`
	ActivePackages  int     `json:"activePackages"`
	TotalUsers      int     `json:"totalUsers"`
	PendingBookings int     `json:"pendingBookings"`
}

// AdminDashboard recomputes the admin stats from snapshots. Revenue here is the
// derived paid sum, independent of the booking store's accumulator.
func AdminDashboard(tours []models.Tour, bookings []models.Booking, users []models.User) AdminSummary {
	s := AdminSummary{
		TotalRevenue:  TotalRevenue(bookings),
		TotalBookings: len(bookings),
	}
	for _, t := range tours {
		if t.IsActive {
			s.ActivePackages++
		}
	}
	for _, u := range users {
		if u.Role == models.RoleUser {
			s.TotalUsers++
		}
	}
	for _, b := range bookings {
		if b.Status == models.BookingStatusPending {
			s.PendingBookings++
		}
	}
	return s
}

// TravelerSummary is the traveler dashboard's stat row.
type TravelerSummary struct {
	TotalBookings    int      `json:"totalBookings"`
	UpcomingTrips    int      `json:"upcomingTrips"`
	TotalSpent       float64  `json:"totalSpent"`
	CountriesVisited []string `json:"countriesVisited"`
	ReviewsGiven     int      `json:"reviewsGiven"`
}

// TravelerDashboard aggregates a traveler's bookings and reviews. Upcoming
// trips are confirmed bookings whose travel date is after now; countries are
// unique booking destinations in first-seen order.
func TravelerDashboard(bookings []models.Booking, reviews []models.Review, now time.Time) TravelerSummary {
	s := TravelerSummary{
		TotalBookings:    len(bookings),
		CountriesVisited: []string{},
		ReviewsGiven:     len(reviews),
	}
	seen := map[string]bool{}
	for _, b := range bookings {
		if b.Status == models.BookingStatusConfirmed && b.TravelDate.After(now) {
			s.UpcomingTrips++
		}
		if b.PaymentStatus == models.PaymentStatusPaid {
			s.TotalSpent += b.TotalAmount
		}
		if !seen[b.Destination] {
			seen[b.Destination] = true
			s.CountriesVisited = append(s.CountriesVisited, b.Destination)
		}
	}
	return s
}

// RecommendedTours returns up to n active tours in catalog order, as shown on
// the traveler dashboard.
func RecommendedTours(tours []models.Tour, n int) []models.Tour {
	out := make([]models.Tour, 0, n)
	for _, t := range tours {
		if !t.IsActive {
			continue
		}
		out = append(out, t)
		if len(out) == n {
			break
		}
	}
	return out
}
