package models

import "time"

// ServicePackage is a purchasable party package with a fixed price and
// guest capacity. Packages referenced by bookings are soft-deactivated
// rather than deleted.
type ServicePackage struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Duration    string    `json:"duration"`
	Capacity    int       `json:"capacity"`
	Rating      float64   `json:"rating"`
	ReviewCount int       `json:"review_count"`
	ImageURL    string    `json:"image_url"`
	IsActive    bool      `json:"is_active"`
	Features    []string  `json:"features"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ServicePackageInput carries admin create/update fields.
type ServicePackageInput struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" binding:"required,gt=0"`
	Duration    string   `json:"duration"`
	Capacity    int      `json:"capacity" binding:"required,gte=1"`
	ImageURL    string   `json:"image_url"`
	IsActive    *bool    `json:"is_active"`
	Features    []string `json:"features"`
}
