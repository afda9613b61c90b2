package dto

import (
	"time"

	"TOURSANDTRAVELS_BACK-END/internal/models"
	"TOURSANDTRAVELS_BACK-END/internal/utils"
)

// UpdateUserRequest is the admin account-update payload. Every field is
// omit-to-keep; the active flag is a pointer so an absent value is
// distinguishable from false.
type UpdateUserRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
	Avatar    string `json:"avatar"`
	IsActive  *bool  `json:"isActive"`
}

// UserResponse represents a directory account in API responses
type UserResponse struct {
	ID               string   `json:"id"`
	FirstName        string   `json:"firstName"`
	LastName         string   `json:"lastName"`
	Email            string   `json:"email"`
	Phone            string   `json:"phone"`
	Role             string   `json:"role"`
	Avatar           string   `json:"avatar"`
	JoinDate         string   `json:"joinDate"`
	LastLogin        string   `json:"lastLogin"`
	IsActive         bool     `json:"isActive"`
	TotalBookings    int      `json:"totalBookings"`
	TotalSpent       float64  `json:"totalSpent"`
	CountriesVisited []string `json:"countriesVisited"`
	ReviewsGiven     int      `json:"reviewsGiven"`
}

// UserListResponse is the user-management payload, counters included
type UserListResponse struct {
	Users       []UserResponse `json:"users"`
	TotalUsers  int            `json:"totalUsers"`
	ActiveUsers int            `json:"activeUsers"`
}

// UserFromModel converts an account record to its response shape
func UserFromModel(u models.User) UserResponse {
	return UserResponse{
		ID:               u.ID,
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		Email:            u.Email,
		Phone:            u.Phone,
		Role:             u.Role,
		Avatar:           u.Avatar,
		JoinDate:         utils.FormatDate(u.JoinDate),
		LastLogin:        u.LastLogin.Format(time.RFC3339),
		IsActive:         u.IsActive,
		TotalBookings:    u.TotalBookings,
		TotalSpent:       u.TotalSpent,
		CountriesVisited: u.CountriesVisited,
		ReviewsGiven:     u.ReviewsGiven,
	}
}

// UsersFromModels converts a slice of account records
func UsersFromModels(users []models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, UserFromModel(u))
	}
	return out
}
