package services

import (
	"context"

	"caters-backend/internal/models"
	"caters-backend/internal/repositories"
)

type CustomerService struct {
	Repo repositories.CustomerStore
}

func NewCustomerService(repo repositories.CustomerStore) *CustomerService {
	return &CustomerService{Repo: repo}
}

func (s *CustomerService) CreateCustomer(ctx context.Context, req *models.CreateCustomerRequest) (*models.Customer, error) {
	if req.Name == "" || req.Phone == "" {
		return nil, ValidationError("name and phone are required")
	}

	customer := &models.Customer{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
	}

	if err := s.Repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) GetCustomer(ctx context.Context, id int) (*models.Customer, error) {
	return s.Repo.Get(ctx, id)
}

func (s *CustomerService) ListCustomers(ctx context.Context) ([]*models.Customer, error) {
	return s.Repo.List(ctx)
}

func (s *CustomerService) UpdateCustomer(ctx context.Context, id int, req *models.UpdateCustomerRequest) (*models.Customer, error) {
	if req.Name == "" || req.Phone == "" {
		return nil, ValidationError("name and phone are required")
	}

	if _, err := s.Repo.Get(ctx, id); err != nil {
		return nil, err
	}

	customer := &models.Customer{
		ID:      id,
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
	}

	if err := s.Repo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return s.Repo.Get(ctx, id)
}
