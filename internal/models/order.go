package models

import "time"

// Order lifecycle statuses
const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusInProgress = "in_progress"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

type Order struct {
	ID          int       `json:"id"`
	OrderNumber string    `json:"order_number"`
	CustomerID  int       `json:"customer_id"`
	Status      string    `json:"status"`
	TotalAmount float64   `json:"total_amount"` // derived: sum of event amounts
	Balance     float64   `json:"balance"`      // derived: total minus payments, floored at 0
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// OrderDetail is an order expanded with its customer, events (each with
// menus) and payments, as returned by the orders list and single-order GET.
type OrderDetail struct {
	Order
	Customer *Customer      `json:"customer,omitempty"`
	Events   []*EventDetail `json:"events"`
	Payments []*Payment     `json:"payments"`
}

// CreateOrderRequest represents the request body for creating an order
type CreateOrderRequest struct {
	CustomerID int    `json:"customer_id"`
	Status     string `json:"status"`
	Notes      string `json:"notes"`
}

// UpdateOrderRequest represents the request body for updating an order
type UpdateOrderRequest struct {
	CustomerID int    `json:"customer_id"`
	Status     string `json:"status"`
	Notes      string `json:"notes"`
}

// ValidOrderStatus reports whether s is a known order status
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusInProgress,
		OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}
