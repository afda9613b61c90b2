package models

import "time"

// Tour categories available in the catalog.
const (
	CategoryBeach     = "Beach"
	CategoryAdventure = "Adventure"
	CategoryCultural  = "Cultural"
	CategoryWildlife  = "Wildlife"
	CategoryCity      = "City"
	CategoryMountain  = "Mountain"
)

// Categories lists every tour category in display order.
var Categories = []string{
	CategoryBeach,
	CategoryAdventure,
	CategoryCultural,
	CategoryWildlife,
	CategoryCity,
	CategoryMountain,
}

// Tour difficulty levels.
const (
	DifficultyEasy      = "easy"
	DifficultyModerate  = "moderate"
	DifficultyDifficult = "difficult"
)

// Tour represents a purchasable travel package in the catalog
type Tour struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	Duration     int       `json:"duration"`
	Destination  string    `json:"destination"`
	Category     string    `json:"category"`
	Image        string    `json:"image"`
	Includes     []string  `json:"includes"`
	MaxGroupSize int       `json:"maxGroupSize"`
	Difficulty   string    `json:"difficulty"`
	Rating       float64   `json:"rating"`
	ReviewCount  int       `json:"reviewCount"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}
