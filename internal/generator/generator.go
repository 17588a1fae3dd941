// Package generator produces the SEO URL set of a vehicle listing from the
// template catalog and the SpinText/SyntaxText configurations.
//
// Generation is pure: a Generator holds only read-only configuration and may
// be shared between goroutines.
package generator

import (
	"strconv"

	"vitrine-url-api/internal/location"
	"vitrine-url-api/internal/model"
	"vitrine-url-api/internal/pattern"
	"vitrine-url-api/internal/slug"
	"vitrine-url-api/internal/variation"
)

// Keys of the generator variable map
const (
	VarBrandSlug        = "brand_slug"
	VarModelSlug        = "model_slug"
	VarYear             = "year"
	VarCitySlug         = "city_slug"
	VarStateSlug        = "state_slug"
	VarNeighborhoodSlug = "neighborhood_slug"
)

// Generator renders every catalog template for a vehicle
type Generator struct {
	templates  []pattern.Template
	variations variation.Set
	aliases    bool
	applyRules bool
}

// Option configures a Generator
type Option func(*Generator)

// WithVariations replaces the built-in SpinText/SyntaxText configuration
func WithVariations(set variation.Set) Option {
	return func(g *Generator) {
		g.variations = set
	}
}

// WithTemplates restricts generation to the given templates
func WithTemplates(templates []pattern.Template) Option {
	return func(g *Generator) {
		g.templates = templates
	}
}

// WithPlaceholderAliases also fills the catalog vocabulary ({vehicle_id},
// {slug-do-carro}, {cidade-uf}, ...) from the request. Without it those
// placeholders stay literal in the canonical URLs.
func WithPlaceholderAliases() Option {
	return func(g *Generator) {
		g.aliases = true
	}
}

// WithSyntaxRules applies the syntax_rules of each SyntaxText config to its
// rendered URL. Without it the rules are carried as metadata only.
func WithSyntaxRules() Option {
	return func(g *Generator) {
		g.applyRules = true
	}
}

// New builds a Generator over the full catalog and the default variations
func New(opts ...Option) *Generator {
	g := &Generator{
		templates:  pattern.Templates(),
		variations: variation.DefaultSet(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// TemplateCount is the number of records GenerateAll returns
func (g *Generator) TemplateCount() int {
	return len(g.templates)
}

// Variables builds the substitution map for a request. Optional location
// fields only produce a key when they are non-empty.
func (g *Generator) Variables(req model.URLGenerationRequest) map[string]string {
	vars := map[string]string{
		VarBrandSlug: slug.Make(req.Brand),
		VarModelSlug: slug.Make(req.Model),
		VarYear:      strconv.Itoa(req.Year),
	}
	if req.City != "" {
		vars[VarCitySlug] = slug.Make(req.City)
	}
	if req.State != "" {
		vars[VarStateSlug] = slug.Make(req.State)
	}
	if req.Neighborhood != "" {
		vars[VarNeighborhoodSlug] = slug.Make(req.Neighborhood)
	}

	if g.aliases {
		addAliases(vars, req)
	}
	return vars
}

func addAliases(vars map[string]string, req model.URLGenerationRequest) {
	brand := vars[VarBrandSlug]

	vars["vehicle_id"] = strconv.Itoa(req.VehicleID)
	vars["slug-da-marca"] = brand
	vars["slug-do-carro"] = slug.Make(req.Brand + " " + req.Model + " " + strconv.Itoa(req.Year))

	city, hasCity := vars[VarCitySlug]
	state, hasState := vars[VarStateSlug]
	if hasCity {
		vars["cidade"] = city
	}
	if hasCity && hasState {
		vars["cidade-uf"] = city + "-" + state
	}
	if hasCity && hasState && req.Neighborhood != "" {
		vars["bairro-uf"] = slug.Make(location.NeighborhoodUfSlug(req.City, req.Neighborhood, req.State))
	}
}

// GenerateAll renders every template of the catalog against the request and
// returns one record per template, in catalog order.
func (g *Generator) GenerateAll(req model.URLGenerationRequest) []model.VehicleURLGeneration {
	vars := g.Variables(req)

	// The variation sets depend only on the request, so they are computed
	// once and copied into every record.
	spin := g.spinText(vars)
	syntax := g.syntaxText(vars)

	language := req.Language
	if language == "" {
		language = model.DefaultLanguage
	}

	results := make([]model.VehicleURLGeneration, 0, len(g.templates))
	for _, tpl := range g.templates {
		canonical := pattern.Render(tpl.Pattern, vars)
		if canonical == "" {
			continue
		}

		related := make([]string, 0, len(spin)+len(syntax))
		related = append(related, spin...)
		related = append(related, syntax...)

		results = append(results, model.VehicleURLGeneration{
			TemplateID:           tpl.ID,
			VehicleID:            req.VehicleID,
			BrandSlug:            vars[VarBrandSlug],
			ModelSlug:            vars[VarModelSlug],
			Year:                 req.Year,
			CitySlug:             vars[VarCitySlug],
			StateSlug:            vars[VarStateSlug],
			NeighborhoodSlug:     vars[VarNeighborhoodSlug],
			Language:             language,
			CanonicalURL:         canonical,
			RelatedURLs:          related,
			SpinTextVariations:   append([]string{}, spin...),
			SyntaxTextVariations: append([]string{}, syntax...),
		})
	}

	return results
}

// SpinText renders every variation of every SpinText config, dropping
// repeated results
func (g *Generator) SpinText(req model.URLGenerationRequest) []string {
	return g.spinText(g.Variables(req))
}

// SyntaxText renders the pattern of every SyntaxText config, dropping
// repeated results
func (g *Generator) SyntaxText(req model.URLGenerationRequest) []string {
	return g.syntaxText(g.Variables(req))
}

func (g *Generator) spinText(vars map[string]string) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, cfg := range g.variations.SpinText {
		for _, v := range cfg.Variations {
			rendered := pattern.Render(v, vars)
			if seen[rendered] {
				continue
			}
			seen[rendered] = true
			out = append(out, rendered)
		}
	}
	return out
}

func (g *Generator) syntaxText(vars map[string]string) []string {
	loc := variation.Location{
		CitySlug:         vars[VarCitySlug],
		StateSlug:        vars[VarStateSlug],
		NeighborhoodSlug: vars[VarNeighborhoodSlug],
	}

	seen := make(map[string]bool)
	out := []string{}
	for _, cfg := range g.variations.SyntaxText {
		rendered := pattern.Render(cfg.Pattern, vars)
		if g.applyRules {
			rendered = variation.ApplyAll(cfg.Rules, rendered, loc)
		}
		if seen[rendered] {
			continue
		}
		seen[rendered] = true
		out = append(out, rendered)
	}
	return out
}

// Flatten lists every canonical and related URL of a generation, in record
// order. Repeated URLs are kept so the duplicate checker can see them.
func Flatten(generations []model.VehicleURLGeneration) []string {
	var urls []string
	for _, gen := range generations {
		urls = append(urls, gen.CanonicalURL)
		urls = append(urls, gen.RelatedURLs...)
	}
	return urls
}

// Canonicals lists the canonical URL of each record
func Canonicals(generations []model.VehicleURLGeneration) []string {
	urls := make([]string, len(generations))
	for i, gen := range generations {
		urls[i] = gen.CanonicalURL
	}
	return urls
}
