package model

import (
	"time"

	"vitrine-url-api/internal/pattern"
)

// GenerationResponse representa a resposta da geracao de URLs de um veiculo
type GenerationResponse struct {
	VehicleID      int                    `json:"vehicle_id"`
	Generations    []VehicleURLGeneration `json:"generations"`
	CanonicalURLs  []string               `json:"canonical_urls"`
	Duplicates     []DuplicateCheckResult `json:"duplicates"`
	TotalURLs      int                    `json:"total_urls"`
	DuplicateCount int                    `json:"duplicate_count"`
}

// BatchRequest representa a requisicao de geracao em lote
type BatchRequest struct {
	Vehicles []URLGenerationRequest `json:"vehicles" yaml:"vehicles"`
}

// BatchItem e o resultado de um veiculo do lote
type BatchItem struct {
	VehicleID int                 `json:"vehicle_id"`
	Result    *GenerationResponse `json:"result,omitempty"`
	Error     string              `json:"error,omitempty"`
}

// BatchResponse representa a resposta da geracao em lote
type BatchResponse struct {
	Items     []BatchItem `json:"items"`
	Total     int         `json:"total"`
	Success   int         `json:"success"`
	Failed    int         `json:"failed"`
	ElapsedMs int64       `json:"elapsed_ms"`
}

// CanonicalResponse representa a resposta do atalho de URLs canonicas
type CanonicalResponse struct {
	URLs []string `json:"urls"`
}

// URLListRequest e usado pelos endpoints que recebem uma lista de URLs
type URLListRequest struct {
	URLs []string `json:"urls"`
}

// DuplicatesResponse representa a resposta da checagem de duplicidade
type DuplicatesResponse struct {
	Results        []DuplicateCheckResult `json:"results"`
	DuplicateCount int                    `json:"duplicate_count"`
}

// URLValidity e o resultado da validacao sintatica de uma URL
type URLValidity struct {
	URL   string `json:"url"`
	Valid bool   `json:"valid"`
}

// ValidateURLsResponse representa a resposta da validacao de URLs
type ValidateURLsResponse struct {
	Results []URLValidity `json:"results"`
}

// SitemapChangesRequest representa o corpo do endpoint de sitemap
type SitemapChangesRequest struct {
	VehicleID  int         `json:"vehicle_id" validate:"required,gt=0"`
	URLChanges []URLChange `json:"url_changes" validate:"required,min=1,dive"`
}

// TemplatesResponse lista os padroes de URL do catalogo
type TemplatesResponse struct {
	Templates []pattern.Template `json:"templates"`
	Total     int                `json:"total"`
}

// HealthResponse representa a resposta do health check
type HealthResponse struct {
	Status    string    `json:"status"`
	Templates int       `json:"templates"`
	Timestamp time.Time `json:"timestamp"`
}

// ErrorResponse representa uma resposta de erro
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
