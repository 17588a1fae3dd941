package app_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitrine-url-api/internal/app"
	"vitrine-url-api/internal/config"
	"vitrine-url-api/internal/model"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNew(t *testing.T) {
	t.Setenv("URL_PLACEHOLDER_ALIASES", "true")
	cfg, err := config.Load()
	require.NoError(t, err)

	a, err := app.New(cfg, discardLogger())
	require.NoError(t, err)
	defer a.Close()

	resp, err := a.Service.Generate(context.Background(), model.URLGenerationRequest{
		VehicleID: 123, Brand: "Fiat", Model: "Argo", Year: 2024,
	})
	require.NoError(t, err)
	assert.Equal(t, "/123-fiat-argo-2024", resp.Generations[0].CanonicalURL)

	batchResp, err := a.Runner.Run(context.Background(), []model.URLGenerationRequest{
		{VehicleID: 1, Brand: "VW", Model: "Gol", Year: 2015},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, batchResp.Success)
}

func TestNew_CacheDisabled(t *testing.T) {
	t.Setenv("CACHE_ENABLED", "false")
	cfg, err := config.Load()
	require.NoError(t, err)

	a, err := app.New(cfg, discardLogger())
	require.NoError(t, err)
	a.Close()
}

func TestNew_BadVariationsFile(t *testing.T) {
	t.Setenv("URL_VARIATIONS_FILE", "/nao/existe.yaml")
	cfg, err := config.Load()
	require.NoError(t, err)

	_, err = app.New(cfg, discardLogger())
	assert.Error(t, err)
}
