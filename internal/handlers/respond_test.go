package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"caters-backend/internal/repositories"
	"caters-backend/internal/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

func TestWriteServiceErrorValidation(t *testing.T) {
	w := httptest.NewRecorder()
	writeServiceError(w, services.ValidationError("customer_id is required"), "Order not found")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"customer_id is required"}`, w.Body.String())
}

func TestWriteServiceErrorNotFound(t *testing.T) {
	w := httptest.NewRecorder()
	writeServiceError(w, repositories.ErrNotFound, "Order not found")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Order not found"}`, w.Body.String())
}

func TestWriteServiceErrorInternal(t *testing.T) {
	w := httptest.NewRecorder()
	writeServiceError(w, errors.New("pq: connection refused"), "Order not found")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// Internal detail never reaches the client
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
}

func TestPathID(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/orders/17", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "17"})
	assert.Equal(t, 17, pathID(req))

	req = httptest.NewRequest("GET", "/api/orders/abc", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "abc"})
	assert.Equal(t, 0, pathID(req))
}
