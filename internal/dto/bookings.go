package dto

import (
	"time"

	"TOURSANDTRAVELS_BACK-END/internal/models"
	"TOURSANDTRAVELS_BACK-END/internal/utils"
)

// CreateBookingRequest is the traveler booking payload. The tour snapshot,
// amount and end date are derived server-side from the referenced tour.
type CreateBookingRequest struct {
	TourID        string `json:"tourId" validate:"required"`
	TravelDate    string `json:"travelDate" validate:"required"`
	Guests        int    `json:"guests" validate:"gte=1"`
	PaymentMethod string `json:"paymentMethod"`
}

// UpdateBookingRequest is the admin status-update payload. Any status/payment
// combination is accepted; there is no enforced transition graph.
type UpdateBookingRequest struct {
	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`
}

// BookingResponse represents a booking in API responses
type BookingResponse struct {
	ID            string  `json:"id"`
	UserID        string  `json:"userId"`
	TourID        string  `json:"tourId"`
	TourTitle     string  `json:"tourTitle"`
	TourImage     string  `json:"tourImage"`
	Destination   string  `json:"destination"`
	UserEmail     string  `json:"userEmail"`
	UserName      string  `json:"userName"`
	BookingDate   string  `json:"bookingDate"`
	TravelDate    string  `json:"travelDate"`
	EndDate       string  `json:"endDate"`
	Guests        int     `json:"guests"`
	TotalAmount   float64 `json:"totalAmount"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"paymentStatus"`
	PaymentMethod string  `json:"paymentMethod"`
	CreatedAt     string  `json:"createdAt"`
}

// BookingListResponse is the booking-management payload
type BookingListResponse struct {
	Bookings     []BookingResponse `json:"bookings"`
	Total        int               `json:"total"`
	TotalRevenue float64           `json:"totalRevenue"`
}

// BookingFromModel converts a booking record to its response shape
func BookingFromModel(b models.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		UserID:        b.UserID,
		TourID:        b.TourID,
		TourTitle:     b.TourTitle,
		TourImage:     b.TourImage,
		Destination:   b.Destination,
		UserEmail:     b.UserEmail,
		UserName:      b.UserName,
		BookingDate:   utils.FormatDate(b.BookingDate),
		TravelDate:    utils.FormatDate(b.TravelDate),
		EndDate:       utils.FormatDate(b.EndDate),
		Guests:        b.Guests,
		TotalAmount:   b.TotalAmount,
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
		PaymentMethod: b.PaymentMethod,
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
	}
}

// BookingsFromModels converts a slice of booking records
func BookingsFromModels(bookings []models.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, BookingFromModel(b))
	}
	return out
}
