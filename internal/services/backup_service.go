package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"caters-backend/internal/backup"
	"caters-backend/internal/models"
	"caters-backend/internal/repositories"
	"caters-backend/internal/timeutil"
)

// BackupService snapshots the business data as JSON and ships it to the
// configured S3-compatible bucket. Runs only on demand; there is no
// background schedule.
type BackupService struct {
	Orders    *OrderService
	Customers repositories.CustomerStore
	Expenses  repositories.ExpenseStore
	Uploader  *backup.Uploader
}

func NewBackupService(orders *OrderService, customers repositories.CustomerStore, expenses repositories.ExpenseStore, uploader *backup.Uploader) *BackupService {
	return &BackupService{Orders: orders, Customers: customers, Expenses: expenses, Uploader: uploader}
}

type snapshot struct {
	TakenAt   time.Time             `json:"taken_at"`
	Customers []*models.Customer    `json:"customers"`
	Orders    []*models.OrderDetail `json:"orders"`
	Expenses  []*models.Expense     `json:"expenses"`
}

// Run uploads a full snapshot and returns the object key
func (s *BackupService) Run(ctx context.Context) (string, error) {
	if s.Uploader == nil {
		return "", ValidationError("backup storage is not configured")
	}

	customers, err := s.Customers.List(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to collect customers: %w", err)
	}
	orders, err := s.Orders.ListOrders(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to collect orders: %w", err)
	}
	expenses, err := s.Expenses.List(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to collect expenses: %w", err)
	}

	snap := snapshot{
		TakenAt:   timeutil.Now(),
		Customers: customers,
		Orders:    orders,
		Expenses:  expenses,
	}

	body, err := json.Marshal(snap)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("backups/snapshot-%s.json", snap.TakenAt.Format("20060102-150405"))
	if err := s.Uploader.Upload(ctx, key, body); err != nil {
		return "", err
	}

	log.Printf("[Backup] Uploaded snapshot %s (%d bytes)", key, len(body))
	return key, nil
}
