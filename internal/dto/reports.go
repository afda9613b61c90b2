package dto

import "TOURSANDTRAVELS_BACK-END/internal/reports"

// TopTourResponse pairs a tour with its derived booking count
type TopTourResponse struct {
	Tour         TourResponse `json:"tour"`
	BookingCount int          `json:"bookingCount"`
}

// AdminDashboardResponse is the admin dashboard payload
type AdminDashboardResponse struct {
	Summary        reports.AdminSummary  `json:"summary"`
	RecentBookings []BookingResponse     `json:"recentBookings"`
	TopTours       []TopTourResponse     `json:"topTours"`
	StatusCounts   []reports.StatusCount `json:"statusCounts"`
}

// AdminReportsResponse is the reports & analytics payload
type AdminReportsResponse struct {
	TotalRevenue         float64                   `json:"totalRevenue"`
	AverageBookingValue  float64                   `json:"averageBookingValue"`
	CategoryDistribution []reports.CategoryShare   `json:"categoryDistribution"`
	TopDestinations      []reports.DestinationStat `json:"topDestinations"`
	StatusCounts         []reports.StatusCount     `json:"statusCounts"`
	MonthlyRevenue       []reports.MonthRevenue    `json:"monthlyRevenue"`
}

// TravelerDashboardResponse is the traveler dashboard payload
type TravelerDashboardResponse struct {
	Summary          reports.TravelerSummary `json:"summary"`
	RecentBookings   []BookingResponse       `json:"recentBookings"`
	RecommendedTours []TourResponse          `json:"recommendedTours"`
}
