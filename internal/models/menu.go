package models

import "time"

// Menu is a priced line under an event. The structured
// name/description/price/quantity shape is canonical; Items carries the
// legacy free-text menu content of older records and is never summed.
type Menu struct {
	ID          int       `json:"id"`
	EventID     int       `json:"event_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	Items       string    `json:"items"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateMenuRequest represents the request body for creating a menu.
// Price and Quantity are pointers so absence can default to 0 and 1.
type CreateMenuRequest struct {
	EventID     int      `json:"event_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Quantity    *int     `json:"quantity"`
	Items       string   `json:"items"`
}

// UpdateMenuRequest represents the request body for updating a menu.
// The parent event is not editable.
type UpdateMenuRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Quantity    *int     `json:"quantity"`
	Items       string   `json:"items"`
}
