package models

import "time"

// Expense categories
const (
	ExpenseCategoryIngredients = "ingredients"
	ExpenseCategoryStaff       = "staff"
	ExpenseCategoryTransport   = "transport"
	ExpenseCategoryEquipment   = "equipment"
	ExpenseCategoryUtilities   = "utilities"
	ExpenseCategoryRent        = "rent"
	ExpenseCategoryOther       = "other"
)

// Expense is a standalone business expense, not linked to any order or event
type Expense struct {
	ID          int       `json:"id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	ExpenseDate time.Time `json:"expense_date"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateExpenseRequest represents the request body for creating an expense
type CreateExpenseRequest struct {
	Description string     `json:"description"`
	Amount      float64    `json:"amount"`
	Category    string     `json:"category"`
	ExpenseDate *time.Time `json:"expense_date"`
	Notes       string     `json:"notes"`
}

// UpdateExpenseRequest represents the request body for updating an expense
type UpdateExpenseRequest struct {
	Description string     `json:"description"`
	Amount      float64    `json:"amount"`
	Category    string     `json:"category"`
	ExpenseDate *time.Time `json:"expense_date"`
	Notes       string     `json:"notes"`
}

// ValidExpenseCategory reports whether c is a known expense category
func ValidExpenseCategory(c string) bool {
	switch c {
	case ExpenseCategoryIngredients, ExpenseCategoryStaff, ExpenseCategoryTransport,
		ExpenseCategoryEquipment, ExpenseCategoryUtilities, ExpenseCategoryRent,
		ExpenseCategoryOther:
		return true
	}
	return false
}
