package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"caters-backend/internal/middleware"
	"caters-backend/internal/models"
	"caters-backend/internal/services"
	"caters-backend/pkg/utils"
)

type AuthHandler struct {
	Service *services.AuthService
}

func NewAuthHandler(s *services.AuthService) *AuthHandler {
	return &AuthHandler{Service: s}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.Service.Register(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, "User not found")
		return
	}
	utils.JSON(w, http.StatusCreated, resp)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.Service.Login(r.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.Error(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		writeServiceError(w, err, "User not found")
		return
	}
	utils.JSON(w, http.StatusOK, resp)
}

// Me returns the authenticated user resolved from the bearer token
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.Service.Users.Get(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err, "User not found")
		return
	}
	utils.JSON(w, http.StatusOK, user)
}

// Activity returns recent auth events (?limit=, default 50)
func (h *AuthHandler) Activity(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	logs, err := h.Service.RecentActivity(r.Context(), limit)
	if err != nil {
		writeServiceError(w, err, "Activity not found")
		return
	}
	if logs == nil {
		logs = []*models.ActivityLog{}
	}
	utils.JSON(w, http.StatusOK, logs)
}

// Logout revokes the current token for its remaining lifetime
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.GetTokenFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.Service.Logout(r.Context(), token); err != nil {
		writeServiceError(w, err, "User not found")
		return
	}
	utils.Success(w)
}
