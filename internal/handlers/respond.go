package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"caters-backend/internal/repositories"
	"caters-backend/internal/services"
	"caters-backend/pkg/utils"

	"github.com/gorilla/mux"
)

// writeServiceError maps a service failure to the documented status codes:
// validation 400, missing row 404, anything else a logged 500 with a
// generic body.
func writeServiceError(w http.ResponseWriter, err error, notFoundMsg string) {
	var ve services.ValidationError
	switch {
	case errors.As(err, &ve):
		utils.Error(w, http.StatusBadRequest, ve.Error())
	case errors.Is(err, repositories.ErrNotFound):
		utils.Error(w, http.StatusNotFound, notFoundMsg)
	default:
		log.Printf("[API] Internal error: %v", err)
		utils.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}

// pathID parses the {id} path variable; 0 means absent or malformed
func pathID(r *http.Request) int {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	return id
}
