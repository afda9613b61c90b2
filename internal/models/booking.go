package models

import "time"

// Booking statuses. There is no enforced transition graph; admin actions may set
// any status directly.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// Payment statuses.
const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
)

// BookingStatuses lists every booking status in display order.
var BookingStatuses = []string{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusCancelled,
	BookingStatusCompleted,
}

// Booking links a user and a tour for a date range. The user and tour fields are
// denormalized snapshots captured at booking time; they are not kept in sync with
// the user directory or the catalog.
type Booking struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	TourID        string    `json:"tourId"`
	TourTitle     string    `json:"tourTitle"`
	TourImage     string    `json:"tourImage"`
	Destination   string    `json:"destination"`
	UserEmail     string    `json:"userEmail"`
	UserName      string    `json:"userName"`
	BookingDate   time.Time `json:"bookingDate"`
	TravelDate    time.Time `json:"travelDate"`
	EndDate       time.Time `json:"endDate"`
	Guests        int       `json:"guests"`
	TotalAmount   float64   `json:"totalAmount"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"paymentStatus"`
	PaymentMethod string    `json:"paymentMethod"`
	CreatedAt     time.Time `json:"createdAt"`
}
