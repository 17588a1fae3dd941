package handler

import (
	"encoding/json"
	"net/http"

	"vitrine-url-api/internal/model"
	"vitrine-url-api/internal/service"
)

type SitemapHandler struct {
	urlSvc *service.URLService
}

func NewSitemapHandler(urlSvc *service.URLService) *SitemapHandler {
	return &SitemapHandler{urlSvc: urlSvc}
}

// Atualizacao monta o payload de atualizacao do sitemap
func (h *SitemapHandler) Atualizacao(w http.ResponseWriter, r *http.Request) {
	var req model.SitemapChangesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w)
		return
	}

	response, err := h.urlSvc.SitemapUpdate(req)
	if err != nil {
		writeServiceError(w, err, "Erro ao montar atualizacao do sitemap")
		return
	}

	writeJSON(w, http.StatusOK, response)
}
