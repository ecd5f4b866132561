package services

import (
	"context"

	"caters-backend/internal/models"
	"caters-backend/internal/repositories"
)

type EventService struct {
	Events repositories.EventStore
	Orders repositories.OrderStore
	Rollup *RollupService
}

func NewEventService(events repositories.EventStore, orders repositories.OrderStore, rollup *RollupService) *EventService {
	return &EventService{Events: events, Orders: orders, Rollup: rollup}
}

func (s *EventService) CreateEvent(ctx context.Context, req *models.CreateEventRequest) (*models.Event, error) {
	if req.OrderID == 0 {
		return nil, ValidationError("order_id is required")
	}
	if _, err := s.Orders.Get(ctx, req.OrderID); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.EventStatusPlanned
	}
	if !models.ValidEventStatus(status) {
		return nil, ValidationError("invalid event status: " + status)
	}

	event := &models.Event{
		OrderID:    req.OrderID,
		Name:       req.Name,
		Venue:      req.Venue,
		EventDate:  req.EventDate,
		GuestCount: req.GuestCount,
		Status:     status,
		Amount:     req.Amount,
		Notes:      req.Notes,
	}

	if err := s.Events.Create(ctx, event); err != nil {
		return nil, err
	}

	// The rollup overwrites any client-supplied amount with the true sum
	// of the event's menus (zero for a fresh event)
	if err := s.Rollup.EventChanged(ctx, event.ID); err != nil {
		return nil, err
	}
	return s.Events.Get(ctx, event.ID)
}

func (s *EventService) GetEvent(ctx context.Context, id int) (*models.Event, error) {
	return s.Events.Get(ctx, id)
}

func (s *EventService) ListEvents(ctx context.Context, orderID int) ([]*models.Event, error) {
	if orderID != 0 {
		return s.Events.ListByOrder(ctx, orderID)
	}
	return s.Events.List(ctx)
}

func (s *EventService) UpdateEvent(ctx context.Context, id int, req *models.UpdateEventRequest) (*models.Event, error) {
	existing, err := s.Events.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !models.ValidEventStatus(req.Status) {
		return nil, ValidationError("invalid event status: " + req.Status)
	}

	existing.Name = req.Name
	existing.Venue = req.Venue
	existing.EventDate = req.EventDate
	existing.GuestCount = req.GuestCount
	existing.Status = req.Status
	existing.Notes = req.Notes

	if err := s.Events.Update(ctx, existing); err != nil {
		return nil, err
	}
	if err := s.Rollup.EventChanged(ctx, id); err != nil {
		return nil, err
	}
	return s.Events.Get(ctx, id)
}

func (s *EventService) DeleteEvent(ctx context.Context, id int) error {
	event, err := s.Events.Get(ctx, id)
	if err != nil {
		return err
	}
	// Menus go with the event via FK cascade; the parent order is
	// recomputed from whatever events remain
	if err := s.Events.Delete(ctx, id); err != nil {
		return err
	}
	return s.Rollup.EventDeleted(ctx, event.OrderID)
}
