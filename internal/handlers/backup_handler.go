package handlers

import (
	"net/http"

	"caters-backend/internal/services"
	"caters-backend/pkg/utils"
)

type BackupHandler struct {
	Service *services.BackupService
}

func NewBackupHandler(s *services.BackupService) *BackupHandler {
	return &BackupHandler{Service: s}
}

// RunBackup takes a snapshot and uploads it to the configured bucket
func (h *BackupHandler) RunBackup(w http.ResponseWriter, r *http.Request) {
	key, err := h.Service.Run(r.Context())
	if err != nil {
		writeServiceError(w, err, "Backup target not found")
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"key": key})
}
