package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"vitrine-url-api/internal/model"
	"vitrine-url-api/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, model.ErrorResponse{
		Error:   code,
		Message: message,
	})
}

func writeInvalidJSON(w http.ResponseWriter) {
	writeError(w, http.StatusBadRequest, "invalid_request", "JSON invalido no corpo da requisicao")
}

// writeServiceError maps service failures to status codes
func writeServiceError(w http.ResponseWriter, err error, message string) {
	if errors.Is(err, service.ErrInvalidRequest) || errors.Is(err, service.ErrInvalidCategory) {
		writeError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, "internal_error", message)
}
