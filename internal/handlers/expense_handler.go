package handlers

import (
	"encoding/json"
	"net/http"

	"caters-backend/internal/models"
	"caters-backend/internal/services"
	"caters-backend/pkg/utils"
)

type ExpenseHandler struct {
	Service *services.ExpenseService
}

func NewExpenseHandler(s *services.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{Service: s}
}

func (h *ExpenseHandler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var req models.CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	expense, err := h.Service.CreateExpense(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, "Expense not found")
		return
	}
	utils.JSON(w, http.StatusOK, expense)
}

func (h *ExpenseHandler) GetExpense(w http.ResponseWriter, r *http.Request) {
	expense, err := h.Service.GetExpense(r.Context(), pathID(r))
	if err != nil {
		writeServiceError(w, err, "Expense not found")
		return
	}
	utils.JSON(w, http.StatusOK, expense)
}

func (h *ExpenseHandler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.Service.ListExpenses(r.Context())
	if err != nil {
		writeServiceError(w, err, "Expense not found")
		return
	}
	if expenses == nil {
		expenses = []*models.Expense{}
	}
	utils.JSON(w, http.StatusOK, expenses)
}

func (h *ExpenseHandler) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	expense, err := h.Service.UpdateExpense(r.Context(), pathID(r), &req)
	if err != nil {
		writeServiceError(w, err, "Expense not found")
		return
	}
	utils.JSON(w, http.StatusOK, expense)
}

func (h *ExpenseHandler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteExpense(r.Context(), pathID(r)); err != nil {
		writeServiceError(w, err, "Expense not found")
		return
	}
	utils.Success(w)
}
