package models

import "time"

// Review is a traveler-written tour review. Reviews are written by the reviews
// feature and only consumed read-only by the dashboards.
type Review struct {
	ID          string    `json:"id"`
	TourTitle   string    `json:"tourTitle"`
	Destination string    `json:"destination"`
	TourImage   string    `json:"tourImage"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment"`
	ReviewDate  time.Time `json:"reviewDate"`
}
