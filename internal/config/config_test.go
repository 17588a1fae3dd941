package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitrine-url-api/internal/config"
	"vitrine-url-api/internal/generator"
	"vitrine-url-api/internal/model"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.APIPort)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, 20, cfg.Cache.MaxSizePow2)
	assert.Equal(t, 4, cfg.Batch.Workers)
	assert.Equal(t, 500, cfg.Batch.MaxVehicles)
	assert.False(t, cfg.Generator.PlaceholderAliases)
	assert.False(t, cfg.Generator.ApplySyntaxRules)
	assert.Empty(t, cfg.Generator.VariationsFile)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("API_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("URL_PLACEHOLDER_ALIASES", "true")
	t.Setenv("BATCH_WORKERS", "0")
	t.Setenv("HTTP_REQUEST_TIMEOUT", "5s")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.APIPort)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Generator.PlaceholderAliases)
	assert.Equal(t, 1, cfg.Batch.Workers)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("BATCH_WORKERS", "muitos")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestGeneratorOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "variations.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
spintext:
  - name: unico
    pattern: "/{brand_slug}"
    variations: ["/seminovos/{brand_slug}"]
`), 0o644))

	cfg := config.GeneratorConfig{VariationsFile: path, PlaceholderAliases: true}
	opts, err := cfg.GeneratorOptions()
	require.NoError(t, err)
	require.Len(t, opts, 2)

	g := generator.New(opts...)
	req := model.URLGenerationRequest{VehicleID: 1, Brand: "Fiat", Model: "Uno", Year: 2010}
	assert.Equal(t, []string{"/seminovos/fiat"}, g.SpinText(req))
}

func TestGeneratorOptions_MissingFile(t *testing.T) {
	cfg := config.GeneratorConfig{VariationsFile: filepath.Join(t.TempDir(), "nope.yaml")}
	_, err := cfg.GeneratorOptions()
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := config.NewLogger(&buf, "warn")

	logger.Info("ignorado")
	assert.Empty(t, buf.String())

	logger.Warn("registrado", "chave", "valor")
	assert.Contains(t, buf.String(), `"msg":"registrado"`)
	assert.Contains(t, buf.String(), `"chave":"valor"`)
}
