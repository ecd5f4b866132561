package services

import (
	"context"

	"caters-backend/internal/models"
	"caters-backend/internal/repositories"
	"caters-backend/internal/timeutil"
)

type ExpenseService struct {
	Repo repositories.ExpenseStore
}

func NewExpenseService(repo repositories.ExpenseStore) *ExpenseService {
	return &ExpenseService{Repo: repo}
}

func (s *ExpenseService) CreateExpense(ctx context.Context, req *models.CreateExpenseRequest) (*models.Expense, error) {
	if req.Description == "" {
		return nil, ValidationError("description is required")
	}
	if req.Amount <= 0 {
		return nil, ValidationError("amount must be greater than zero")
	}

	category := req.Category
	if category == "" {
		category = models.ExpenseCategoryOther
	}
	if !models.ValidExpenseCategory(category) {
		return nil, ValidationError("invalid expense category: " + category)
	}

	expenseDate := timeutil.Now()
	if req.ExpenseDate != nil {
		expenseDate = timeutil.ToIST(*req.ExpenseDate)
	}

	expense := &models.Expense{
		Description: req.Description,
		Amount:      req.Amount,
		Category:    category,
		ExpenseDate: expenseDate,
		Notes:       req.Notes,
	}

	if err := s.Repo.Create(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

func (s *ExpenseService) GetExpense(ctx context.Context, id int) (*models.Expense, error) {
	return s.Repo.Get(ctx, id)
}

func (s *ExpenseService) ListExpenses(ctx context.Context) ([]*models.Expense, error) {
	return s.Repo.List(ctx)
}

func (s *ExpenseService) UpdateExpense(ctx context.Context, id int, req *models.UpdateExpenseRequest) (*models.Expense, error) {
	existing, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Description == "" {
		return nil, ValidationError("description is required")
	}
	if req.Amount <= 0 {
		return nil, ValidationError("amount must be greater than zero")
	}
	if req.Category != "" && !models.ValidExpenseCategory(req.Category) {
		return nil, ValidationError("invalid expense category: " + req.Category)
	}

	existing.Description = req.Description
	existing.Amount = req.Amount
	if req.Category != "" {
		existing.Category = req.Category
	}
	if req.ExpenseDate != nil {
		existing.ExpenseDate = timeutil.ToIST(*req.ExpenseDate)
	}
	existing.Notes = req.Notes

	if err := s.Repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return s.Repo.Get(ctx, id)
}

func (s *ExpenseService) DeleteExpense(ctx context.Context, id int) error {
	if _, err := s.Repo.Get(ctx, id); err != nil {
		return err
	}
	return s.Repo.Delete(ctx, id)
}
