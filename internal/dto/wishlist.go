package dto

import "TOURSANDTRAVELS_BACK-END/internal/models"

// WishlistAddRequest saves a tour for later; the snapshot is captured from the
// catalog at save time.
type WishlistAddRequest struct {
	TourID string `json:"tourId" validate:"required"`
}

// WishlistResponse is the saved-tours payload
type WishlistResponse struct {
	Items []models.WishlistItem `json:"items"`
	Total int                   `json:"total"`
}
