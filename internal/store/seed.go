package store

import (
	"time"

	"TOURSANDTRAVELS_BACK-END/internal/models"
)

// Seed loads the demo catalog, bookings and user directory into the state via
// the bulk Set operations so every accumulator starts consistent with the data.
func Seed(s *State) {
	s.Tours.Set(SeedTours())
	s.Bookings.Set(SeedBookings())
	s.Users.Set(SeedUsers())
}

// SeedTours returns the demo tour catalog.
func SeedTours() []models.Tour {
	return []models.Tour{
		{
			ID:           "1",
			Title:        "Tropical Paradise Adventure",
			Description:  "Explore pristine beaches, crystal clear waters, and vibrant coral reefs in this unforgettable tropical getaway.",
			Price:        1299,
			Duration:     7,
			Destination:  "Maldives",
			Category:     models.CategoryBeach,
			Image:        "https://images.pexels.com/photos/1287460/pexels-photo-1287460.jpeg?auto=compress&cs=tinysrgb&w=800",
			Includes:     []string{"Accommodation", "Meals", "Water Sports", "Airport Transfer"},
			MaxGroupSize: 12,
			Difficulty:   models.DifficultyEasy,
			Rating:       4.8,
			ReviewCount:  124,
			IsActive:     true,
			CreatedAt:    day("2024-01-15"),
		},
		{
			ID:           "2",
			Title:        "Mountain Expedition",
			Description:  "Challenge yourself with breathtaking mountain trails and stunning alpine views in this adventure-packed expedition.",
			Price:        899,
			Duration:     5,
			Destination:  "Swiss Alps",
			Category:     models.CategoryAdventure,
			Image:        "https://images.pexels.com/photos/618833/pexels-photo-618833.jpeg?auto=compress&cs=tinysrgb&w=800",
			Includes:     []string{"Guide", "Equipment", "Accommodation", "Meals"},
			MaxGroupSize: 8,
			Difficulty:   models.DifficultyDifficult,
			Rating:       4.9,
			ReviewCount:  87,
			IsActive:     true,
			CreatedAt:    day("2024-01-12"),
		},
		{
			ID:           "3",
			Title:        "Cultural Heritage Tour",
			Description:  "Immerse yourself in rich history and cultural traditions while exploring ancient landmarks and local communities.",
			Price:        756,
			Duration:     6,
			Destination:  "India",
			Category:     models.CategoryCultural,
			Image:        "https://images.pexels.com/photos/2161467/pexels-photo-2161467.jpeg?auto=compress&cs=tinysrgb&w=800",
			Includes:     []string{"Local Guide", "Transportation", "Accommodation", "Cultural Shows"},
			MaxGroupSize: 15,
			Difficulty:   models.DifficultyEasy,
			Rating:       4.7,
			ReviewCount:  156,
			IsActive:     true,
			CreatedAt:    day("2024-01-10"),
		},
		{
			ID:           "4",
			Title:        "Wildlife Safari Experience",
			Description:  "Get up close with magnificent wildlife in their natural habitat during this thrilling safari adventure.",
			Price:        1150,
			Duration:     8,
			Destination:  "Kenya",
			Category:     models.CategoryWildlife,
			Image:        "https://images.pexels.com/photos/247502/pexels-photo-247502.jpeg?auto=compress&cs=tinysrgb&w=800",
			Includes:     []string{"Safari Vehicle", "Professional Guide", "Accommodation", "All Meals"},
			MaxGroupSize: 6,
			Difficulty:   models.DifficultyModerate,
			Rating:       4.9,
			ReviewCount:  93,
			IsActive:     true,
			CreatedAt:    day("2024-01-08"),
		},
	}
}

// SeedBookings returns the demo reservation records. Paid revenue across them is
// 2598 + 899; the pending Cultural Heritage booking does not count.
func SeedBookings() []models.Booking {
	return []models.Booking{
		{
			ID:            "1",
			UserID:        "user1",
			TourID:        "1",
			TourTitle:     "Tropical Paradise Adventure",
			TourImage:     "https://images.pexels.com/photos/1287460/pexels-photo-1287460.jpeg?auto=compress&cs=tinysrgb&w=800",
			Destination:   "Maldives",
			UserEmail:     "john@example.com",
			UserName:      "John Doe",
			BookingDate:   day("2024-01-20"),
			TravelDate:    day("2024-03-15"),
			EndDate:       day("2024-03-22"),
			Guests:        2,
			TotalAmount:   2598,
			Status:        models.BookingStatusConfirmed,
			PaymentStatus: models.PaymentStatusPaid,
			PaymentMethod: "Credit Card",
			CreatedAt:     stamp("2024-01-20T10:30:00Z"),
		},
		{
			ID:            "2",
			UserID:        "user2",
			TourID:        "2",
			TourTitle:     "Mountain Expedition",
			TourImage:     "https://images.pexels.com/photos/618833/pexels-photo-618833.jpeg?auto=compress&cs=tinysrgb&w=800",
			Destination:   "Swiss Alps",
			UserEmail:     "jane@example.com",
			UserName:      "Jane Smith",
			BookingDate:   day("2024-01-18"),
			TravelDate:    day("2024-04-10"),
			EndDate:       day("2024-04-15"),
			Guests:        1,
			TotalAmount:   899,
			Status:        models.BookingStatusConfirmed,
			PaymentStatus: models.PaymentStatusPaid,
			PaymentMethod: "PayPal",
			CreatedAt:     stamp("2024-01-18T14:15:00Z"),
		},
		{
			ID:            "3",
			UserID:        "user3",
			TourID:        "3",
			TourTitle:     "Cultural Heritage Tour",
			TourImage:     "https://images.pexels.com/photos/2161467/pexels-photo-2161467.jpeg?auto=compress&cs=tinysrgb&w=800",
			Destination:   "India",
			UserEmail:     "mike@example.com",
			UserName:      "Mike Johnson",
			BookingDate:   day("2024-01-22"),
			TravelDate:    day("2024-05-20"),
			EndDate:       day("2024-05-26"),
			Guests:        4,
			TotalAmount:   3024,
			Status:        models.BookingStatusPending,
			PaymentStatus: models.PaymentStatusPending,
			PaymentMethod: "Bank Transfer",
			CreatedAt:     stamp("2024-01-22T09:45:00Z"),
		},
	}
}

// SeedUsers returns the demo user directory: three travelers and one admin.
func SeedUsers() []models.User {
	return []models.User{
		{
			ID:               "user1",
			FirstName:        "John",
			LastName:         "Doe",
			Email:            "john@example.com",
			Phone:            "+1234567890",
			Role:             models.RoleUser,
			Avatar:           "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg?auto=compress&cs=tinysrgb&w=150",
			JoinDate:         day("2023-06-15"),
			LastLogin:        stamp("2024-01-25T10:30:00Z"),
			IsActive:         true,
			TotalBookings:    3,
			TotalSpent:       4250,
			CountriesVisited: []string{"Maldives", "Thailand", "Japan"},
			ReviewsGiven:     2,
		},
		{
			ID:               "user2",
			FirstName:        "Jane",
			LastName:         "Smith",
			Email:            "jane@example.com",
			Phone:            "+1234567891",
			Role:             models.RoleUser,
			Avatar:           "https://images.pexels.com/photos/415829/pexels-photo-415829.jpeg?auto=compress&cs=tinysrgb&w=150",
			JoinDate:         day("2023-08-20"),
			LastLogin:        stamp("2024-01-24T15:45:00Z"),
			IsActive:         true,
			TotalBookings:    2,
			TotalSpent:       1950,
			CountriesVisited: []string{"Switzerland", "Austria"},
			ReviewsGiven:     2,
		},
		{
			ID:               "user3",
			FirstName:        "Mike",
			LastName:         "Johnson",
			Email:            "mike@example.com",
			Phone:            "+1234567892",
			Role:             models.RoleUser,
			Avatar:           "https://images.pexels.com/photos/1222271/pexels-photo-1222271.jpeg?auto=compress&cs=tinysrgb&w=150",
			JoinDate:         day("2023-12-10"),
			LastLogin:        stamp("2024-01-23T08:20:00Z"),
			IsActive:         true,
			TotalBookings:    1,
			TotalSpent:       756,
			CountriesVisited: []string{"India"},
			ReviewsGiven:     0,
		},
		{
			ID:               "admin1",
			FirstName:        "Admin",
			LastName:         "User",
			Email:            "admin@toursandtravels.com",
			Phone:            "+1234567893",
			Role:             models.RoleAdmin,
			Avatar:           "https://images.pexels.com/photos/1043471/pexels-photo-1043471.jpeg?auto=compress&cs=tinysrgb&w=150",
			JoinDate:         day("2023-01-01"),
			LastLogin:        stamp("2024-01-25T12:00:00Z"),
			IsActive:         true,
			CountriesVisited: []string{},
		},
	}
}

func day(v string) time.Time {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		panic(err)
	}
	return t
}

func stamp(v string) time.Time {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		panic(err)
	}
	return t
}
