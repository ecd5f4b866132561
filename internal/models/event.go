package models

import "time"

// Event lifecycle statuses (separate from the order lifecycle)
const (
	EventStatusPlanned   = "planned"
	EventStatusConfirmed = "confirmed"
	EventStatusCompleted = "completed"
	EventStatusCancelled = "cancelled"
)

type Event struct {
	ID         int        `json:"id"`
	OrderID    int        `json:"order_id"`
	Name       string     `json:"name"`
	Venue      string     `json:"venue"`
	EventDate  *time.Time `json:"event_date"`
	GuestCount int        `json:"guest_count"`
	Status     string     `json:"status"`
	Amount     float64    `json:"amount"` // derived: sum of menu price*quantity
	Notes      string     `json:"notes"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// EventDetail is an event expanded with its menus
type EventDetail struct {
	Event
	Menus []*Menu `json:"menus"`
}

// CreateEventRequest represents the request body for creating an event.
// A client-supplied amount is accepted but immediately overwritten by the
// recomputed sum of the event's menus.
type CreateEventRequest struct {
	OrderID    int        `json:"order_id"`
	Name       string     `json:"name"`
	Venue      string     `json:"venue"`
	EventDate  *time.Time `json:"event_date"`
	GuestCount int        `json:"guest_count"`
	Status     string     `json:"status"`
	Amount     float64    `json:"amount"`
	Notes      string     `json:"notes"`
}

// UpdateEventRequest represents the request body for updating an event.
// The parent order is not editable.
type UpdateEventRequest struct {
	Name       string     `json:"name"`
	Venue      string     `json:"venue"`
	EventDate  *time.Time `json:"event_date"`
	GuestCount int        `json:"guest_count"`
	Status     string     `json:"status"`
	Notes      string     `json:"notes"`
}

// ValidEventStatus reports whether s is a known event status
func ValidEventStatus(s string) bool {
	switch s {
	case EventStatusPlanned, EventStatusConfirmed, EventStatusCompleted, EventStatusCancelled:
		return true
	}
	return false
}
