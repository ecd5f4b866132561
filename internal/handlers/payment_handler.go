package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"caters-backend/internal/models"
	"caters-backend/internal/services"
	"caters-backend/pkg/utils"
)

type PaymentHandler struct {
	Service *services.PaymentService
}

func NewPaymentHandler(s *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{Service: s}
}

func (h *PaymentHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	payment, err := h.Service.CreatePayment(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, "Order not found")
		return
	}
	utils.JSON(w, http.StatusOK, payment)
}

func (h *PaymentHandler) GetPayment(w http.ResponseWriter, r *http.Request) {
	payment, err := h.Service.GetPayment(r.Context(), pathID(r))
	if err != nil {
		writeServiceError(w, err, "Payment not found")
		return
	}
	utils.JSON(w, http.StatusOK, payment)
}

func (h *PaymentHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	entityID, _ := strconv.Atoi(r.URL.Query().Get("entity_id"))

	payments, err := h.Service.ListPayments(r.Context(), entityID)
	if err != nil {
		writeServiceError(w, err, "Payment not found")
		return
	}
	if payments == nil {
		payments = []*models.Payment{}
	}
	utils.JSON(w, http.StatusOK, payments)
}

func (h *PaymentHandler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	var req models.UpdatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	payment, err := h.Service.UpdatePayment(r.Context(), pathID(r), &req)
	if err != nil {
		writeServiceError(w, err, "Payment not found")
		return
	}
	utils.JSON(w, http.StatusOK, payment)
}

func (h *PaymentHandler) DeletePayment(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeletePayment(r.Context(), pathID(r)); err != nil {
		writeServiceError(w, err, "Payment not found")
		return
	}
	utils.Success(w)
}
