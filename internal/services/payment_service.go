package services

import (
	"context"

	"caters-backend/internal/models"
	"caters-backend/internal/repositories"
	"caters-backend/internal/timeutil"
)

type PaymentService struct {
	Payments repositories.PaymentStore
	Orders   repositories.OrderStore
	Rollup   *RollupService
}

func NewPaymentService(payments repositories.PaymentStore, orders repositories.OrderStore, rollup *RollupService) *PaymentService {
	return &PaymentService{Payments: payments, Orders: orders, Rollup: rollup}
}

func (s *PaymentService) CreatePayment(ctx context.Context, req *models.CreatePaymentRequest) (*models.Payment, error) {
	if req.EntityType == "" || req.EntityID == 0 {
		return nil, ValidationError("entity_type and entity_id are required")
	}
	if req.Amount <= 0 {
		return nil, ValidationError("amount must be greater than zero")
	}
	if req.PaymentMethod != "" && !models.ValidPaymentMethod(req.PaymentMethod) {
		return nil, ValidationError("invalid payment method: " + req.PaymentMethod)
	}
	// Order payments are keyed on the entity tag; an order reference must
	// resolve before the payment is accepted
	if req.EntityType == models.PaymentEntityOrder {
		if _, err := s.Orders.Get(ctx, req.EntityID); err != nil {
			return nil, err
		}
	}

	method := req.PaymentMethod
	if method == "" {
		method = models.PaymentMethodCash
	}
	paymentDate := timeutil.Now()
	if req.PaymentDate != nil {
		paymentDate = timeutil.ToIST(*req.PaymentDate)
	}

	payment := &models.Payment{
		EntityType:    req.EntityType,
		EntityID:      req.EntityID,
		Amount:        req.Amount,
		PaymentMethod: method,
		PaymentDate:   paymentDate,
		Notes:         req.Notes,
	}

	if err := s.Payments.Create(ctx, payment); err != nil {
		return nil, err
	}
	if payment.EntityType == models.PaymentEntityOrder {
		if err := s.Rollup.PaymentChanged(ctx, payment.EntityID); err != nil {
			return nil, err
		}
	}
	return payment, nil
}

func (s *PaymentService) GetPayment(ctx context.Context, id int) (*models.Payment, error) {
	return s.Payments.Get(ctx, id)
}

func (s *PaymentService) ListPayments(ctx context.Context, entityID int) ([]*models.Payment, error) {
	if entityID != 0 {
		return s.Payments.ListByEntity(ctx, models.PaymentEntityOrder, entityID)
	}
	return s.Payments.List(ctx)
}

func (s *PaymentService) UpdatePayment(ctx context.Context, id int, req *models.UpdatePaymentRequest) (*models.Payment, error) {
	existing, err := s.Payments.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Amount <= 0 {
		return nil, ValidationError("amount must be greater than zero")
	}
	if req.PaymentMethod != "" && !models.ValidPaymentMethod(req.PaymentMethod) {
		return nil, ValidationError("invalid payment method: " + req.PaymentMethod)
	}

	existing.Amount = req.Amount
	if req.PaymentMethod != "" {
		existing.PaymentMethod = req.PaymentMethod
	}
	if req.PaymentDate != nil {
		existing.PaymentDate = timeutil.ToIST(*req.PaymentDate)
	}
	existing.Notes = req.Notes

	if err := s.Payments.Update(ctx, existing); err != nil {
		return nil, err
	}
	if existing.EntityType == models.PaymentEntityOrder {
		if err := s.Rollup.PaymentChanged(ctx, existing.EntityID); err != nil {
			return nil, err
		}
	}
	return s.Payments.Get(ctx, id)
}

func (s *PaymentService) DeletePayment(ctx context.Context, id int) error {
	payment, err := s.Payments.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Payments.Delete(ctx, id); err != nil {
		return err
	}
	if payment.EntityType == models.PaymentEntityOrder {
		return s.Rollup.PaymentChanged(ctx, payment.EntityID)
	}
	return nil
}
