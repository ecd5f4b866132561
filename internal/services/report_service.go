package services

import (
	"bytes"
	"context"
	"fmt"

	"caters-backend/internal/config"
	"caters-backend/internal/timeutil"

	"github.com/jung-kurt/gofpdf/v2"
)

// ReportService renders printable order summaries
type ReportService struct {
	Orders *OrderService
	cfg    *config.Config
}

func NewReportService(orders *OrderService, cfg *config.Config) *ReportService {
	return &ReportService{Orders: orders, cfg: cfg}
}

// OrderPDF generates a PDF summary of one order: customer, events with
// their menus, payments, and the derived totals
func (s *ReportService) OrderPDF(ctx context.Context, orderID int) ([]byte, error) {
	detail, err := s.Orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, fmt.Sprintf("%s - Order Summary", s.cfg.Company.Name), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Generated: %s", timeutil.Now().Format("02-Jan-2006 03:04 PM")), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Order Info Box
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Order Information", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Order No: %s", detail.OrderNumber), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Status: %s", detail.Status), "RB", 1, "L", false, 0, "")
	if detail.Customer != nil {
		pdf.CellFormat(95, 7, fmt.Sprintf("Customer: %s", detail.Customer.Name), "LB", 0, "L", false, 0, "")
		pdf.CellFormat(95, 7, fmt.Sprintf("Phone: %s", detail.Customer.Phone), "RB", 1, "L", false, 0, "")
	}
	pdf.Ln(5)

	// Events with menus
	for _, event := range detail.Events {
		pdf.SetFont("Arial", "B", 12)
		title := event.Name
		if title == "" {
			title = "Event"
		}
		if event.EventDate != nil {
			title = fmt.Sprintf("%s (%s)", title, timeutil.FormatIST(*event.EventDate, "02-Jan-2006"))
		}
		pdf.CellFormat(190, 8, title, "1", 1, "L", true, 0, "")

		pdf.SetFont("Arial", "B", 10)
		pdf.SetFillColor(200, 200, 200)
		pdf.CellFormat(80, 7, "Menu", "1", 0, "C", true, 0, "")
		pdf.CellFormat(35, 7, "Price", "1", 0, "C", true, 0, "")
		pdf.CellFormat(30, 7, "Qty", "1", 0, "C", true, 0, "")
		pdf.CellFormat(45, 7, "Amount", "1", 1, "C", true, 0, "")

		pdf.SetFont("Arial", "", 10)
		for _, menu := range event.Menus {
			name := menu.Name
			if name == "" {
				name = menu.Items
			}
			if len(name) > 40 {
				name = name[:37] + "..."
			}
			pdf.CellFormat(80, 6, name, "1", 0, "L", false, 0, "")
			pdf.CellFormat(35, 6, fmt.Sprintf("%.2f", menu.Price), "1", 0, "R", false, 0, "")
			pdf.CellFormat(30, 6, fmt.Sprintf("%d", menu.Quantity), "1", 0, "C", false, 0, "")
			pdf.CellFormat(45, 6, fmt.Sprintf("%.2f", menu.Price*float64(menu.Quantity)), "1", 1, "R", false, 0, "")
		}

		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(145, 7, "Event Total", "1", 0, "R", false, 0, "")
		pdf.CellFormat(45, 7, fmt.Sprintf("Rs. %.2f", event.Amount), "1", 1, "R", false, 0, "")
		pdf.Ln(3)
	}

	// Payments
	if len(detail.Payments) > 0 {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetFillColor(240, 240, 240)
		pdf.CellFormat(190, 8, "Payments", "1", 1, "L", true, 0, "")

		pdf.SetFont("Arial", "", 10)
		for _, payment := range detail.Payments {
			pdf.CellFormat(80, 6, timeutil.FormatIST(payment.PaymentDate, "02-Jan-2006"), "1", 0, "L", false, 0, "")
			pdf.CellFormat(65, 6, payment.PaymentMethod, "1", 0, "C", false, 0, "")
			pdf.CellFormat(45, 6, fmt.Sprintf("%.2f", payment.Amount), "1", 1, "R", false, 0, "")
		}
		pdf.Ln(3)
	}

	// Financial Summary
	pdf.SetFont("Arial", "B", 12)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(190, 8, "Financial Summary", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 8, fmt.Sprintf("Total Amount: Rs. %.2f", detail.TotalAmount), "1", 0, "C", false, 0, "")
	if detail.Balance > 0 {
		pdf.SetFillColor(255, 200, 200)
	} else {
		pdf.SetFillColor(200, 255, 200)
	}
	pdf.CellFormat(95, 8, fmt.Sprintf("Balance Due: Rs. %.2f", detail.Balance), "1", 1, "C", true, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
