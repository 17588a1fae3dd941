package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"vitrine-url-api/internal/batch"
	"vitrine-url-api/internal/model"
	"vitrine-url-api/internal/service"
)

type URLHandler struct {
	urlSvc      *service.URLService
	runner      *batch.Runner
	maxVehicles int
}

func NewURLHandler(urlSvc *service.URLService, runner *batch.Runner, maxVehicles int) *URLHandler {
	return &URLHandler{
		urlSvc:      urlSvc,
		runner:      runner,
		maxVehicles: maxVehicles,
	}
}

// Gerar gera todas as URLs do catalogo para um veiculo
func (h *URLHandler) Gerar(w http.ResponseWriter, r *http.Request) {
	var req model.URLGenerationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w)
		return
	}

	response, err := h.urlSvc.Generate(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, "Erro ao gerar URLs")
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// Lote gera as URLs de varios veiculos
func (h *URLHandler) Lote(w http.ResponseWriter, r *http.Request) {
	var req model.BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w)
		return
	}

	if len(req.Vehicles) == 0 {
		writeError(w, http.StatusBadRequest, "validation_error", "Campo 'vehicles' e obrigatorio")
		return
	}
	if h.maxVehicles > 0 && len(req.Vehicles) > h.maxVehicles {
		writeError(w, http.StatusBadRequest, "batch_too_large",
			fmt.Sprintf("Maximo de %d veiculos por lote", h.maxVehicles))
		return
	}

	response, err := h.runner.Run(r.Context(), req.Vehicles)
	if err != nil {
		if errors.Is(err, r.Context().Err()) {
			writeError(w, http.StatusServiceUnavailable, "timeout", "Geracao em lote interrompida")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "Erro ao gerar lote")
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// Progresso retorna o andamento do ultimo lote
func (h *URLHandler) Progresso(w http.ResponseWriter, r *http.Request) {
	snapshot, ok := h.runner.Progress()
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", "Nenhum lote executado")
		return
	}

	writeJSON(w, http.StatusOK, snapshot)
}

// Canonicas retorna a lista curta de URLs canonicas de um veiculo
func (h *URLHandler) Canonicas(w http.ResponseWriter, r *http.Request) {
	var req model.URLGenerationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w)
		return
	}

	urls, err := h.urlSvc.Canonical(req)
	if err != nil {
		writeServiceError(w, err, "Erro ao gerar URLs canonicas")
		return
	}

	writeJSON(w, http.StatusOK, model.CanonicalResponse{URLs: urls})
}

// Duplicados verifica URLs duplicadas em uma lista
func (h *URLHandler) Duplicados(w http.ResponseWriter, r *http.Request) {
	var req model.URLListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w)
		return
	}

	response, err := h.urlSvc.CheckDuplicates(req.URLs)
	if err != nil {
		writeServiceError(w, err, "Erro ao verificar duplicidade")
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// Validar verifica a sintaxe de cada URL
func (h *URLHandler) Validar(w http.ResponseWriter, r *http.Request) {
	var req model.URLListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w)
		return
	}

	response, err := h.urlSvc.ValidateURLs(req.URLs)
	if err != nil {
		writeServiceError(w, err, "Erro ao validar URLs")
		return
	}

	writeJSON(w, http.StatusOK, response)
}
