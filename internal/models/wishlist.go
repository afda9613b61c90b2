package models

// WishlistItem is a saved-for-later tour reference. The fields beyond ID are a
// snapshot taken when the tour was saved; catalog edits do not refresh them.
type WishlistItem struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Destination string  `json:"destination"`
	Duration    int     `json:"duration"`
}
