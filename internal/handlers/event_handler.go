package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"caters-backend/internal/models"
	"caters-backend/internal/services"
	"caters-backend/pkg/utils"
)

type EventHandler struct {
	Service *services.EventService
}

func NewEventHandler(s *services.EventService) *EventHandler {
	return &EventHandler{Service: s}
}

func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req models.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	event, err := h.Service.CreateEvent(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, "Order not found")
		return
	}
	utils.JSON(w, http.StatusOK, event)
}

func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	event, err := h.Service.GetEvent(r.Context(), pathID(r))
	if err != nil {
		writeServiceError(w, err, "Event not found")
		return
	}
	utils.JSON(w, http.StatusOK, event)
}

func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	orderID, _ := strconv.Atoi(r.URL.Query().Get("order_id"))

	events, err := h.Service.ListEvents(r.Context(), orderID)
	if err != nil {
		writeServiceError(w, err, "Event not found")
		return
	}
	if events == nil {
		events = []*models.Event{}
	}
	utils.JSON(w, http.StatusOK, events)
}

func (h *EventHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	event, err := h.Service.UpdateEvent(r.Context(), pathID(r), &req)
	if err != nil {
		writeServiceError(w, err, "Event not found")
		return
	}
	utils.JSON(w, http.StatusOK, event)
}

func (h *EventHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteEvent(r.Context(), pathID(r)); err != nil {
		writeServiceError(w, err, "Event not found")
		return
	}
	utils.Success(w)
}
