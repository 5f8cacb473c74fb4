package domain

import "time"

// MenuCategory groups menu items on the storefront.
type MenuCategory string

const (
	CategoryCoffee MenuCategory = "coffee"
	CategoryFood   MenuCategory = "food"
	CategoryPastry MenuCategory = "pastry"
)

// Valid reports whether the category is one of the known variants.
func (c MenuCategory) Valid() bool {
	switch c {
	case CategoryCoffee, CategoryFood, CategoryPastry:
		return true
	}
	return false
}

// MenuItem is a storefront menu entry.
type MenuItem struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Category    MenuCategory
	Image       string
	Available   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Offer is a promotional entry. A nil ValidUntil means the offer is ongoing.
type Offer struct {
	ID          string
	Title       string
	Description string
	ValidUntil  *time.Time
	Image       string
	Badge       string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// StaffProfile is a public staff listing entry. Role here is free text
// ("Barista", "Roaster"), unrelated to dashboard roles.
type StaffProfile struct {
	ID        string
	Name      string
	Role      string
	Bio       string
	Image     string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
