package services

import (
	"context"

	"caters-backend/internal/models"
	"caters-backend/internal/repositories"
)

type OrderService struct {
	Orders    repositories.OrderStore
	Customers repositories.CustomerStore
	Events    repositories.EventStore
	Menus     repositories.MenuStore
	Payments  repositories.PaymentStore
}

func NewOrderService(
	orders repositories.OrderStore,
	customers repositories.CustomerStore,
	events repositories.EventStore,
	menus repositories.MenuStore,
	payments repositories.PaymentStore,
) *OrderService {
	return &OrderService{
		Orders:    orders,
		Customers: customers,
		Events:    events,
		Menus:     menus,
		Payments:  payments,
	}
}

func (s *OrderService) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error) {
	if req.CustomerID == 0 {
		return nil, ValidationError("customer_id is required")
	}
	if _, err := s.Customers.Get(ctx, req.CustomerID); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.OrderStatusPending
	}
	if !models.ValidOrderStatus(status) {
		return nil, ValidationError("invalid order status: " + status)
	}

	order := &models.Order{
		CustomerID: req.CustomerID,
		Status:     status,
		Notes:      req.Notes,
	}

	if err := s.Orders.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// GetOrder returns one order expanded with its customer, events (each with
// menus) and payments
func (s *OrderService) GetOrder(ctx context.Context, id int) (*models.OrderDetail, error) {
	order, err := s.Orders.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.expand(ctx, order)
}

// ListOrders returns all orders, newest first, each with the same expansion
// as GetOrder
func (s *OrderService) ListOrders(ctx context.Context) ([]*models.OrderDetail, error) {
	orders, err := s.Orders.List(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]*models.OrderDetail, 0, len(orders))
	for _, order := range orders {
		detail, err := s.expand(ctx, order)
		if err != nil {
			return nil, err
		}
		details = append(details, detail)
	}
	return details, nil
}

func (s *OrderService) expand(ctx context.Context, order *models.Order) (*models.OrderDetail, error) {
	detail := &models.OrderDetail{
		Order:    *order,
		Events:   []*models.EventDetail{},
		Payments: []*models.Payment{},
	}

	// A dangling customer reference is tolerated; the order still renders
	if customer, err := s.Customers.Get(ctx, order.CustomerID); err == nil {
		detail.Customer = customer
	}

	events, err := s.Events.ListByOrder(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	for _, event := range events {
		menus, err := s.Menus.ListByEvent(ctx, event.ID)
		if err != nil {
			return nil, err
		}
		if menus == nil {
			menus = []*models.Menu{}
		}
		detail.Events = append(detail.Events, &models.EventDetail{Event: *event, Menus: menus})
	}

	payments, err := s.Payments.ListByEntity(ctx, models.PaymentEntityOrder, order.ID)
	if err != nil {
		return nil, err
	}
	if payments != nil {
		detail.Payments = payments
	}
	return detail, nil
}

func (s *OrderService) UpdateOrder(ctx context.Context, id int, req *models.UpdateOrderRequest) (*models.Order, error) {
	existing, err := s.Orders.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CustomerID == 0 {
		return nil, ValidationError("customer_id is required")
	}
	if req.CustomerID != existing.CustomerID {
		if _, err := s.Customers.Get(ctx, req.CustomerID); err != nil {
			return nil, err
		}
	}
	if !models.ValidOrderStatus(req.Status) {
		return nil, ValidationError("invalid order status: " + req.Status)
	}

	existing.CustomerID = req.CustomerID
	existing.Status = req.Status
	existing.Notes = req.Notes

	if err := s.Orders.Update(ctx, existing); err != nil {
		return nil, err
	}
	return s.Orders.Get(ctx, id)
}

func (s *OrderService) DeleteOrder(ctx context.Context, id int) error {
	if _, err := s.Orders.Get(ctx, id); err != nil {
		return err
	}
	return s.Orders.Delete(ctx, id)
}
