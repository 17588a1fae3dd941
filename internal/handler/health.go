package handler

import (
	"net/http"
	"time"

	"vitrine-url-api/internal/model"
)

type templateCounter interface {
	TemplateCount() int
}

type HealthHandler struct {
	templates templateCounter
}

func NewHealthHandler(templates templateCounter) *HealthHandler {
	return &HealthHandler{templates: templates}
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	response := model.HealthResponse{
		Status:    "ok",
		Templates: h.templates.TemplateCount(),
		Timestamp: time.Now(),
	}

	if response.Templates == 0 {
		response.Status = "degraded"
	}

	writeJSON(w, http.StatusOK, response)
}
