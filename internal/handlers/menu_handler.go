package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"caters-backend/internal/models"
	"caters-backend/internal/services"
	"caters-backend/pkg/utils"
)

type MenuHandler struct {
	Service *services.MenuService
}

func NewMenuHandler(s *services.MenuService) *MenuHandler {
	return &MenuHandler{Service: s}
}

func (h *MenuHandler) CreateMenu(w http.ResponseWriter, r *http.Request) {
	var req models.CreateMenuRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	menu, err := h.Service.CreateMenu(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, "Event not found")
		return
	}
	utils.JSON(w, http.StatusOK, menu)
}

func (h *MenuHandler) GetMenu(w http.ResponseWriter, r *http.Request) {
	menu, err := h.Service.GetMenu(r.Context(), pathID(r))
	if err != nil {
		writeServiceError(w, err, "Menu not found")
		return
	}
	utils.JSON(w, http.StatusOK, menu)
}

func (h *MenuHandler) ListMenus(w http.ResponseWriter, r *http.Request) {
	eventID, _ := strconv.Atoi(r.URL.Query().Get("event_id"))

	menus, err := h.Service.ListMenus(r.Context(), eventID)
	if err != nil {
		writeServiceError(w, err, "Menu not found")
		return
	}
	if menus == nil {
		menus = []*models.Menu{}
	}
	utils.JSON(w, http.StatusOK, menus)
}

func (h *MenuHandler) UpdateMenu(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateMenuRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	menu, err := h.Service.UpdateMenu(r.Context(), pathID(r), &req)
	if err != nil {
		writeServiceError(w, err, "Menu not found")
		return
	}
	utils.JSON(w, http.StatusOK, menu)
}

func (h *MenuHandler) DeleteMenu(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteMenu(r.Context(), pathID(r)); err != nil {
		writeServiceError(w, err, "Menu not found")
		return
	}
	utils.Success(w)
}
