package generator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitrine-url-api/internal/generator"
	"vitrine-url-api/internal/model"
)

func TestCanonicalURLs(t *testing.T) {
	req := model.URLGenerationRequest{Brand: "Honda", Model: "Civic", Year: 2023}
	assert.Equal(t, []string{"/honda/civic-2023"}, generator.CanonicalURLs(req))

	req.City = "São Paulo"
	req.State = "SP"
	urls := generator.CanonicalURLs(req)
	require.Len(t, urls, 2)
	assert.True(t, strings.HasSuffix(urls[1], "/sao-paulo-sp"))

	req.Neighborhood = "Vila Madalena"
	urls = generator.CanonicalURLs(req)
	require.Len(t, urls, 3)
	assert.Contains(t, urls[2], "/sao-paulo/vila-madalena-sp")
	assert.Equal(t, "/honda/civic-2023/sao-paulo/vila-madalena-sp", urls[2])
}

func TestCanonicalURLs_PartialLocation(t *testing.T) {
	cityOnly := model.URLGenerationRequest{Brand: "Honda", Model: "Civic", Year: 2023, City: "Campinas"}
	assert.Len(t, generator.CanonicalURLs(cityOnly), 1)

	noCity := model.URLGenerationRequest{Brand: "Honda", Model: "Civic", Year: 2023, State: "SP", Neighborhood: "Centro"}
	assert.Len(t, generator.CanonicalURLs(noCity), 1)
}

func TestCanonicalURLs_DoesNotResolveCollision(t *testing.T) {
	req := model.URLGenerationRequest{Brand: "Fiat", Model: "Mobi", Year: 2022, City: "Osasco", State: "SP", Neighborhood: "Osasco"}
	urls := generator.CanonicalURLs(req)
	require.Len(t, urls, 3)
	assert.Equal(t, "/fiat/mobi-2022/osasco/osasco-sp", urls[2])
}
