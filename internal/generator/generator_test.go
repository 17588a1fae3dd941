package generator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitrine-url-api/internal/generator"
	"vitrine-url-api/internal/model"
	"vitrine-url-api/internal/pattern"
	"vitrine-url-api/internal/variation"
)

var (
	argo = model.URLGenerationRequest{VehicleID: 123, Brand: "Fiat", Model: "Argo", Year: 2024}

	civicSP = model.URLGenerationRequest{
		VehicleID:    7,
		Brand:        "Honda",
		Model:        "Civic",
		Year:         2023,
		City:         "São Paulo",
		State:        "SP",
		Neighborhood: "Vila Madalena",
	}
)

func findTemplate(t *testing.T, gens []model.VehicleURLGeneration, id string) model.VehicleURLGeneration {
	t.Helper()
	for _, g := range gens {
		if g.TemplateID == id {
			return g
		}
	}
	t.Fatalf("template %s not generated", id)
	return model.VehicleURLGeneration{}
}

func TestVariables(t *testing.T) {
	g := generator.New()

	vars := g.Variables(argo)
	assert.Equal(t, map[string]string{
		"brand_slug": "fiat",
		"model_slug": "argo",
		"year":       "2024",
	}, vars)

	vars = g.Variables(civicSP)
	assert.Equal(t, "sao-paulo", vars["city_slug"])
	assert.Equal(t, "sp", vars["state_slug"])
	assert.Equal(t, "vila-madalena", vars["neighborhood_slug"])
}

func TestGenerateAll_Cardinality(t *testing.T) {
	g := generator.New()

	for _, req := range []model.URLGenerationRequest{argo, civicSP} {
		gens := g.GenerateAll(req)
		assert.Len(t, gens, len(pattern.Templates()))
		assert.Equal(t, g.TemplateCount(), len(gens))
	}
}

func TestGenerateAll_PlaceholderVocabularyStaysLiteral(t *testing.T) {
	gens := generator.New().GenerateAll(argo)

	basic := findTemplate(t, gens, "vehicle-basic")
	assert.Equal(t, "/{vehicle_id}-{slug-do-carro}", basic.CanonicalURL)
	assert.Equal(t, 123, basic.VehicleID)
	assert.Equal(t, "fiat", basic.BrandSlug)
	assert.Equal(t, "argo", basic.ModelSlug)
	assert.Equal(t, 2024, basic.Year)
	assert.Equal(t, model.DefaultLanguage, basic.Language)
	assert.Empty(t, basic.CitySlug)

	article := findTemplate(t, gens, "article-basic")
	assert.Equal(t, "/blog/{article_id}-{slug-do-artigo}", article.CanonicalURL)
}

func TestGenerateAll_RelatedIsSpinThenSyntax(t *testing.T) {
	gens := generator.New().GenerateAll(civicSP)
	require.NotEmpty(t, gens)

	first := gens[0]
	expected := append(append([]string{}, first.SpinTextVariations...), first.SyntaxTextVariations...)
	assert.Equal(t, expected, first.RelatedURLs)

	for _, g := range gens[1:] {
		assert.Equal(t, first.SpinTextVariations, g.SpinTextVariations)
		assert.Equal(t, first.SyntaxTextVariations, g.SyntaxTextVariations)
	}
}

func TestGenerateAll_RecordsDoNotShareSlices(t *testing.T) {
	gens := generator.New().GenerateAll(argo)
	require.True(t, len(gens) > 1)

	gens[0].SpinTextVariations[0] = "/mutated"
	gens[0].RelatedURLs[0] = "/mutated"
	assert.NotEqual(t, "/mutated", gens[1].SpinTextVariations[0])
	assert.NotEqual(t, "/mutated", gens[1].RelatedURLs[0])
}

func TestGenerateAll_KeepsLanguage(t *testing.T) {
	req := argo
	req.Language = "es"
	for _, g := range generator.New().GenerateAll(req) {
		assert.Equal(t, "es", g.Language)
	}
}

func TestSpinText(t *testing.T) {
	spin := generator.New().SpinText(civicSP)

	assert.Contains(t, spin, "/comprar-carro/honda-civic-2023")
	assert.Contains(t, spin, "/comprar-carro-usado/honda-civic-2023")
	assert.Contains(t, spin, "/honda/civic-2023")
	assert.Contains(t, spin, "/honda-civic-2023/sao-paulo-sp")
	assert.Contains(t, spin, "/sao-paulo/honda-civic-2023")

	seen := map[string]bool{}
	for _, u := range spin {
		assert.False(t, seen[u], "duplicate %s", u)
		seen[u] = true
	}
}

func TestSpinText_DeduplicatesWithinCall(t *testing.T) {
	set := variation.Set{
		SpinText: []variation.SpinTextConfig{
			{Name: "a", Pattern: "/{brand_slug}", Variations: []string{"/{brand_slug}", "/{brand_slug}"}},
			{Name: "b", Pattern: "/{brand_slug}", Variations: []string{"/{brand_slug}", "/{model_slug}"}},
		},
	}
	spin := generator.New(generator.WithVariations(set)).SpinText(argo)
	assert.Equal(t, []string{"/fiat", "/argo"}, spin)
}

func TestSpinText_WithoutLocationLeavesPlaceholders(t *testing.T) {
	spin := generator.New().SpinText(argo)
	assert.Contains(t, spin, "/fiat-argo-2024/{city_slug}-{state_slug}")
}

func TestSyntaxText(t *testing.T) {
	syntax := generator.New().SyntaxText(civicSP)
	assert.Equal(t, []string{
		"/honda/civic-2023",
		"/honda/civic-2023/sao-paulo-sp",
		"/honda/civic-2023/sao-paulo/vila-madalena-sp",
	}, syntax)
}

func TestSyntaxText_RulesAreInertByDefault(t *testing.T) {
	set := variation.Set{
		SyntaxText: []variation.SyntaxTextConfig{
			{Name: "upper", Pattern: "/{brand_slug}/MODELO", Rules: []variation.Rule{variation.RuleLowercase}},
		},
	}

	inert := generator.New(generator.WithVariations(set)).SyntaxText(argo)
	assert.Equal(t, []string{"/fiat/MODELO"}, inert)

	applied := generator.New(generator.WithVariations(set), generator.WithSyntaxRules()).SyntaxText(argo)
	assert.Equal(t, []string{"/fiat/modelo"}, applied)
}

func TestSyntaxText_AddLocationSuffix(t *testing.T) {
	set := variation.Set{
		SyntaxText: []variation.SyntaxTextConfig{
			{Name: "loc", Pattern: "/{brand_slug}/{model_slug}-{year}", Rules: []variation.Rule{variation.RuleAddLocationSuffix}},
		},
	}
	out := generator.New(generator.WithVariations(set), generator.WithSyntaxRules()).SyntaxText(civicSP)
	assert.Equal(t, []string{"/honda/civic-2023-sao-paulo-sp"}, out)
}

func TestPlaceholderAliases(t *testing.T) {
	g := generator.New(generator.WithPlaceholderAliases())

	gens := g.GenerateAll(argo)
	assert.Equal(t, "/123-fiat-argo-2024", findTemplate(t, gens, "vehicle-basic").CanonicalURL)
	assert.Equal(t, "/fiat/123-fiat-argo-2024", findTemplate(t, gens, "vehicle-brand").CanonicalURL)
	// No location in the request: location placeholders stay literal
	assert.Equal(t, "/{cidade-uf}/123-fiat-argo-2024", findTemplate(t, gens, "vehicle-city").CanonicalURL)

	gens = g.GenerateAll(civicSP)
	assert.Equal(t, "/sao-paulo/vila-madalena/7-honda-civic-2023", findTemplate(t, gens, "vehicle-neighborhood").CanonicalURL)
	assert.Equal(t, "/comprar-honda/sao-paulo-sp/7-honda-civic-2023", findTemplate(t, gens, "buy-brand-city").CanonicalURL)
}

func TestPlaceholderAliases_NeighborhoodCollision(t *testing.T) {
	req := model.URLGenerationRequest{VehicleID: 9, Brand: "Fiat", Model: "Mobi", Year: 2022, City: "Osasco", State: "SP", Neighborhood: "Osasco"}
	gens := generator.New(generator.WithPlaceholderAliases()).GenerateAll(req)

	got := findTemplate(t, gens, "vehicle-neighborhood").CanonicalURL
	assert.Equal(t, "/osasco/osasco-sp/9-fiat-mobi-2022", got)
}

func TestWithTemplates(t *testing.T) {
	tpl, ok := pattern.Find("brand-city")
	require.True(t, ok)

	gens := generator.New(generator.WithTemplates([]pattern.Template{tpl})).GenerateAll(civicSP)
	require.Len(t, gens, 1)
	assert.Equal(t, "/marcas/{slug-da-marca}/{cidade-uf}", gens[0].CanonicalURL)
}

func TestFlatten(t *testing.T) {
	gens := generator.New().GenerateAll(argo)
	urls := generator.Flatten(gens)

	expected := 0
	for _, g := range gens {
		expected += 1 + len(g.RelatedURLs)
	}
	assert.Len(t, urls, expected)
	assert.Equal(t, gens[0].CanonicalURL, urls[0])
	assert.Equal(t, generator.Canonicals(gens)[1], urls[1+len(gens[0].RelatedURLs)])
}

func TestGenerateAll_NoEmptyCanonical(t *testing.T) {
	for _, g := range generator.New().GenerateAll(model.URLGenerationRequest{}) {
		assert.NotEmpty(t, strings.TrimSpace(g.CanonicalURL))
	}
}
