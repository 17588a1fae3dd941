package handler

import (
	"net/http"

	"vitrine-url-api/internal/model"
	"vitrine-url-api/internal/service"
)

type PadraoHandler struct {
	urlSvc *service.URLService
}

func NewPadraoHandler(urlSvc *service.URLService) *PadraoHandler {
	return &PadraoHandler{urlSvc: urlSvc}
}

// List lista os padroes de URL, opcionalmente filtrados por categoria
func (h *PadraoHandler) List(w http.ResponseWriter, r *http.Request) {
	templates, err := h.urlSvc.Templates(r.URL.Query().Get("categoria"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_category",
			"Categoria deve ser vehicle, article ou brand")
		return
	}

	writeJSON(w, http.StatusOK, model.TemplatesResponse{
		Templates: templates,
		Total:     len(templates),
	})
}
