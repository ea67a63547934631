package domain

import "time"

// Painting represents an artwork in the gallery.
// The service exposes paintings read-only; there is no write path over HTTP.
type Painting struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	ImageURL    string     `json:"imageUrl,omitempty"`
	Medium      string     `json:"medium,omitempty"`
	Dimensions  string     `json:"dimensions,omitempty"`
	Year        *int       `json:"year,omitempty"`
	Price       *float64   `json:"price,omitempty"`
	Featured    bool       `json:"featured"`
	Available   bool       `json:"available"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	SoldAt      *time.Time `json:"soldAt,omitempty"`
}
