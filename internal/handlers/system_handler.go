package handlers

import (
	"net/http"

	"caters-backend/internal/monitoring"
	"caters-backend/pkg/utils"
)

type SystemHandler struct{}

func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

// SystemStats returns host CPU, memory and disk usage
func (h *SystemHandler) SystemStats(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, monitoring.CollectSystemStats())
}
