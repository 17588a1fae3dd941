package model

import "time"

// URLGenerationRequest descreve o veiculo para o qual as URLs sao geradas
type URLGenerationRequest struct {
	VehicleID    int    `json:"vehicle_id" yaml:"vehicle_id" validate:"required,gt=0"`
	Brand        string `json:"brand" yaml:"brand" validate:"required"`
	Model        string `json:"model" yaml:"model" validate:"required"`
	Year         int    `json:"year" yaml:"year" validate:"required,gt=0"`
	City         string `json:"city,omitempty" yaml:"city,omitempty"`
	State        string `json:"state,omitempty" yaml:"state,omitempty"`
	Neighborhood string `json:"neighborhood,omitempty" yaml:"neighborhood,omitempty"`
	Language     string `json:"language,omitempty" yaml:"language,omitempty"`
}

// DefaultLanguage is used when the request does not name one
const DefaultLanguage = "pt-BR"

// VehicleURLGeneration e o resultado de um template do catalogo
type VehicleURLGeneration struct {
	TemplateID           string   `json:"template_id"`
	VehicleID            int      `json:"vehicle_id"`
	BrandSlug            string   `json:"brand_slug"`
	ModelSlug            string   `json:"model_slug"`
	Year                 int      `json:"year"`
	CitySlug             string   `json:"city_slug,omitempty"`
	StateSlug            string   `json:"state_slug,omitempty"`
	NeighborhoodSlug     string   `json:"neighborhood_slug,omitempty"`
	Language             string   `json:"language"`
	CanonicalURL         string   `json:"canonical_url"`
	RelatedURLs          []string `json:"related_urls"`
	SpinTextVariations   []string `json:"spintext_variations"`
	SyntaxTextVariations []string `json:"syntaxtext_variations"`
}

// DuplicateCheckResult e o veredito de duplicidade de uma URL
type DuplicateCheckResult struct {
	URL         string   `json:"url"`
	IsDuplicate bool     `json:"is_duplicate"`
	Duplicates  []string `json:"duplicates"`
}

// ChangeType classifica uma alteracao de URL enviada ao sitemap
type ChangeType string

const (
	ChangeCreated    ChangeType = "created"
	ChangeUpdated    ChangeType = "updated"
	ChangeRedirected ChangeType = "redirected"
	ChangeDeleted    ChangeType = "deleted"
)

// URLChange e uma alteracao individual de URL
type URLChange struct {
	OldURL     string     `json:"old_url,omitempty"`
	NewURL     string     `json:"new_url,omitempty"`
	ChangeType ChangeType `json:"change_type" validate:"required,oneof=created updated redirected deleted"`
}

// SitemapUpdateRequest e o payload enviado ao backend de sitemap
type SitemapUpdateRequest struct {
	VehicleID       int         `json:"vehicle_id"`
	URLChanges      []URLChange `json:"url_changes"`
	UpdateTimestamp time.Time   `json:"update_timestamp"`
}
