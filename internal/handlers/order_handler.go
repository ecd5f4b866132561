package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"caters-backend/internal/models"
	"caters-backend/internal/services"
	"caters-backend/pkg/utils"
)

type OrderHandler struct {
	Service *services.OrderService
	Reports *services.ReportService
}

func NewOrderHandler(s *services.OrderService, reports *services.ReportService) *OrderHandler {
	return &OrderHandler{Service: s, Reports: reports}
}

func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.Service.CreateOrder(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, "Customer not found")
		return
	}
	utils.JSON(w, http.StatusOK, order)
}

func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Service.GetOrder(r.Context(), pathID(r))
	if err != nil {
		writeServiceError(w, err, "Order not found")
		return
	}
	utils.JSON(w, http.StatusOK, order)
}

func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Service.ListOrders(r.Context())
	if err != nil {
		writeServiceError(w, err, "Order not found")
		return
	}
	if orders == nil {
		orders = []*models.OrderDetail{}
	}
	utils.JSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.Service.UpdateOrder(r.Context(), pathID(r), &req)
	if err != nil {
		writeServiceError(w, err, "Order not found")
		return
	}
	utils.JSON(w, http.StatusOK, order)
}

func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteOrder(r.Context(), pathID(r)); err != nil {
		writeServiceError(w, err, "Order not found")
		return
	}
	utils.Success(w)
}

// OrderPDF streams a printable summary of the order
func (h *OrderHandler) OrderPDF(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	pdfBytes, err := h.Reports.OrderPDF(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "Order not found")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="order-%d.pdf"`, id))
	w.Write(pdfBytes)
}
