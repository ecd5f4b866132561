package models

import "time"

// Payment entity tags. Only order payments participate in the balance
// rollup; the tag is kept open for other billable entities.
const (
	PaymentEntityOrder = "order"
)

// Payment methods
const (
	PaymentMethodCash         = "cash"
	PaymentMethodCard         = "card"
	PaymentMethodUPI          = "upi"
	PaymentMethodBankTransfer = "bank_transfer"
	PaymentMethodCheque       = "cheque"
)

type Payment struct {
	ID            int       `json:"id"`
	EntityType    string    `json:"entity_type"`
	EntityID      int       `json:"entity_id"`
	Amount        float64   `json:"amount"`
	PaymentMethod string    `json:"payment_method"`
	PaymentDate   time.Time `json:"payment_date"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CreatePaymentRequest represents the request body for recording a payment
type CreatePaymentRequest struct {
	EntityType    string     `json:"entity_type"`
	EntityID      int        `json:"entity_id"`
	Amount        float64    `json:"amount"`
	PaymentMethod string     `json:"payment_method"`
	PaymentDate   *time.Time `json:"payment_date"`
	Notes         string     `json:"notes"`
}

// UpdatePaymentRequest represents the request body for updating a payment.
// The billed entity is not editable.
type UpdatePaymentRequest struct {
	Amount        float64    `json:"amount"`
	PaymentMethod string     `json:"payment_method"`
	PaymentDate   *time.Time `json:"payment_date"`
	Notes         string     `json:"notes"`
}

// ValidPaymentMethod reports whether m is a known payment method
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodUPI,
		PaymentMethodBankTransfer, PaymentMethodCheque:
		return true
	}
	return false
}
