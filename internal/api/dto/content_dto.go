package dto

import "time"

// MenuItemRequest payload for menu item create/update.
type MenuItemRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Available   *bool   `json:"available"`
}

// MenuItemResponse is a menu item as served to clients.
type MenuItemResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Image       string    `json:"image,omitempty"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// OfferRequest payload for offer create/update. ValidUntil empty or absent
// means the offer is ongoing.
type OfferRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	ValidUntil  *time.Time `json:"valid_until"`
	Image       string     `json:"image"`
	Badge       string     `json:"badge"`
	Active      *bool      `json:"active"`
}

// OfferResponse is an offer as served to clients.
type OfferResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	ValidUntil  *time.Time `json:"valid_until,omitempty"`
	Image       string     `json:"image,omitempty"`
	Badge       string     `json:"badge,omitempty"`
	Active      bool       `json:"active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// StaffProfileRequest payload for staff profile create/update.
type StaffProfileRequest struct {
	Name   string `json:"name"`
	Role   string `json:"role"`
	Bio    string `json:"bio"`
	Image  string `json:"image"`
	Active *bool  `json:"active"`
}

// StaffProfileResponse is a staff profile as served to clients.
type StaffProfileResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Bio       string    `json:"bio"`
	Image     string    `json:"image,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
