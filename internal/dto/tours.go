package dto

import (
	"TOURSANDTRAVELS_BACK-END/internal/models"
	"TOURSANDTRAVELS_BACK-END/internal/utils"
)

// TourRequest is the admin create/update payload for a tour package
type TourRequest struct {
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description"`
	Price        float64  `json:"price" validate:"gte=0"`
	Duration     int      `json:"duration" validate:"gte=1"`
	Destination  string   `json:"destination" validate:"required"`
	Category     string   `json:"category" validate:"required"`
	Image        string   `json:"image"`
	Includes     []string `json:"includes"`
	MaxGroupSize int      `json:"maxGroupSize" validate:"gte=1"`
	Difficulty   string   `json:"difficulty"`
	IsActive     bool     `json:"isActive"`
}

// TourResponse represents a tour in API responses
type TourResponse struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	Duration     int      `json:"duration"`
	Destination  string   `json:"destination"`
	Category     string   `json:"category"`
	Image        string   `json:"image"`
	Includes     []string `json:"includes"`
	MaxGroupSize int      `json:"maxGroupSize"`
	Difficulty   string   `json:"difficulty"`
	Rating       float64  `json:"rating"`
	ReviewCount  int      `json:"reviewCount"`
	IsActive     bool     `json:"isActive"`
	CreatedAt    string   `json:"createdAt"`
}

// TourListResponse is the browse/catalog payload
type TourListResponse struct {
	Tours []TourResponse `json:"tours"`
	Total int            `json:"total"`
}

// TourFromModel converts a tour record to its response shape
func TourFromModel(t models.Tour) TourResponse {
	return TourResponse{
		ID:           t.ID,
		Title:        t.Title,
		Description:  t.Description,
		Price:        t.Price,
		Duration:     t.Duration,
		Destination:  t.Destination,
		Category:     t.Category,
		Image:        t.Image,
		Includes:     t.Includes,
		MaxGroupSize: t.MaxGroupSize,
		Difficulty:   t.Difficulty,
		Rating:       t.Rating,
		ReviewCount:  t.ReviewCount,
		IsActive:     t.IsActive,
		CreatedAt:    utils.FormatDate(t.CreatedAt),
	}
}

// ToursFromModels converts a slice of tour records
func ToursFromModels(tours []models.Tour) []TourResponse {
	out := make([]TourResponse, 0, len(tours))
	for _, t := range tours {
		out = append(out, TourFromModel(t))
	}
	return out
}
