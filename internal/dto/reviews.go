package dto

import (
	"TOURSANDTRAVELS_BACK-END/internal/models"
	"TOURSANDTRAVELS_BACK-END/internal/utils"
)

// ReviewRequest is the create/update payload for a tour review
type ReviewRequest struct {
	TourTitle   string `json:"tourTitle" validate:"required"`
	Destination string `json:"destination"`
	TourImage   string `json:"tourImage"`
	Rating      int    `json:"rating" validate:"gte=1,lte=5"`
	Comment     string `json:"comment"`
}

// ReviewResponse represents a review in API responses
type ReviewResponse struct {
	ID          string `json:"id"`
	TourTitle   string `json:"tourTitle"`
	Destination string `json:"destination"`
	TourImage   string `json:"tourImage"`
	Rating      int    `json:"rating"`
	Comment     string `json:"comment"`
	ReviewDate  string `json:"reviewDate"`
}

// ReviewListResponse is the my-reviews payload
type ReviewListResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
	Total   int              `json:"total"`
}

// ReviewFromModel converts a review record to its response shape
func ReviewFromModel(r models.Review) ReviewResponse {
	return ReviewResponse{
		ID:          r.ID,
		TourTitle:   r.TourTitle,
		Destination: r.Destination,
		TourImage:   r.TourImage,
		Rating:      r.Rating,
		Comment:     r.Comment,
		ReviewDate:  utils.FormatDate(r.ReviewDate),
	}
}

// ReviewsFromModels converts a slice of review records
func ReviewsFromModels(reviews []models.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, ReviewFromModel(r))
	}
	return out
}
