package models

import "time"

// User roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a traveler or administrator account. The travel-history
// aggregates (TotalBookings, TotalSpent, CountriesVisited, ReviewsGiven) are
// seeded values, not derived from the booking store, and may drift from it.
type User struct {
	ID               string    `json:"id"`
	FirstName        string    `json:"firstName"`
	LastName         string    `json:"lastName"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	Role             string    `json:"role"`
	Avatar           string    `json:"avatar"`
	JoinDate         time.Time `json:"joinDate"`
	LastLogin        time.Time `json:"lastLogin"`
	IsActive         bool      `json:"isActive"`
	TotalBookings    int       `json:"totalBookings"`
	TotalSpent       float64   `json:"totalSpent"`
	CountriesVisited []string  `json:"countriesVisited"`
	ReviewsGiven     int       `json:"reviewsGiven"`
}
