package models

import "time"

// Profile holds the user-editable details attached to a hosted-auth
// identity. Created lazily on the first authenticated read; the email is
// mirrored from the auth token so admin views can reach it.
type Profile struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProfileInput carries the owner-update fields.
type ProfileInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}
