package services

import (
	"context"

	"caters-backend/internal/models"
	"caters-backend/internal/repositories"
)

type MenuService struct {
	Menus  repositories.MenuStore
	Events repositories.EventStore
	Rollup *RollupService
}

func NewMenuService(menus repositories.MenuStore, events repositories.EventStore, rollup *RollupService) *MenuService {
	return &MenuService{Menus: menus, Events: events, Rollup: rollup}
}

func (s *MenuService) CreateMenu(ctx context.Context, req *models.CreateMenuRequest) (*models.Menu, error) {
	if req.EventID == 0 {
		return nil, ValidationError("event_id is required")
	}
	if req.Name == "" && req.Items == "" {
		return nil, ValidationError("name is required")
	}
	if _, err := s.Events.Get(ctx, req.EventID); err != nil {
		return nil, err
	}

	menu := &models.Menu{
		EventID:     req.EventID,
		Name:        req.Name,
		Description: req.Description,
		Price:       0,
		Quantity:    1,
		Items:       req.Items,
	}
	if req.Price != nil {
		menu.Price = *req.Price
	}
	if req.Quantity != nil {
		menu.Quantity = *req.Quantity
	}

	if err := s.Menus.Create(ctx, menu); err != nil {
		return nil, err
	}
	if err := s.Rollup.MenuChanged(ctx, menu.EventID); err != nil {
		return nil, err
	}
	return menu, nil
}

func (s *MenuService) GetMenu(ctx context.Context, id int) (*models.Menu, error) {
	return s.Menus.Get(ctx, id)
}

func (s *MenuService) ListMenus(ctx context.Context, eventID int) ([]*models.Menu, error) {
	if eventID != 0 {
		return s.Menus.ListByEvent(ctx, eventID)
	}
	return s.Menus.List(ctx)
}

func (s *MenuService) UpdateMenu(ctx context.Context, id int, req *models.UpdateMenuRequest) (*models.Menu, error) {
	existing, err := s.Menus.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name == "" && req.Items == "" {
		return nil, ValidationError("name is required")
	}

	existing.Name = req.Name
	existing.Description = req.Description
	existing.Items = req.Items
	existing.Price = 0
	existing.Quantity = 1
	if req.Price != nil {
		existing.Price = *req.Price
	}
	if req.Quantity != nil {
		existing.Quantity = *req.Quantity
	}

	if err := s.Menus.Update(ctx, existing); err != nil {
		return nil, err
	}
	if err := s.Rollup.MenuChanged(ctx, existing.EventID); err != nil {
		return nil, err
	}
	return s.Menus.Get(ctx, id)
}

func (s *MenuService) DeleteMenu(ctx context.Context, id int) error {
	menu, err := s.Menus.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Menus.Delete(ctx, id); err != nil {
		return err
	}
	return s.Rollup.MenuChanged(ctx, menu.EventID)
}
