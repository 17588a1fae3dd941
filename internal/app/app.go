// Package app wires the URL engine from configuration. It is shared by the
// HTTP server and the CLI.
package app

import (
	"fmt"
	"log/slog"

	"vitrine-url-api/internal/batch"
	"vitrine-url-api/internal/cache"
	"vitrine-url-api/internal/config"
	"vitrine-url-api/internal/generator"
	"vitrine-url-api/internal/service"
	"vitrine-url-api/internal/validation"
)

type App struct {
	Config  *config.Config
	Service *service.URLService
	Runner  *batch.Runner

	cache *cache.GenerationCache
}

func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	genOpts, err := cfg.Generator.GeneratorOptions()
	if err != nil {
		return nil, err
	}
	gen := generator.New(genOpts...)

	svcOpts := []service.Option{
		service.WithURLListValidator(validation.NewURLListValidator(
			cfg.Validation.MaxURLLength, cfg.Validation.MaxURLBatch,
		)),
	}

	a := &App{Config: cfg}
	if cfg.Cache.Enabled {
		c, err := cache.New(cfg.Cache.MaxSizePow2)
		if err != nil {
			return nil, fmt.Errorf("failed to create generation cache: %w", err)
		}
		a.cache = c
		svcOpts = append(svcOpts, service.WithCache(c))
	}

	a.Service = service.NewURLService(gen, logger, svcOpts...)
	a.Runner = batch.NewRunner(a.Service, cfg.Batch.Workers, logger)

	logger.Info("url engine ready",
		"templates", gen.TemplateCount(),
		"variations_file", cfg.Generator.VariationsFile,
		"placeholder_aliases", cfg.Generator.PlaceholderAliases,
		"syntax_rules", cfg.Generator.ApplySyntaxRules,
		"cache", cfg.Cache.Enabled,
	)

	return a, nil
}

// Close releases the generation cache
func (a *App) Close() {
	if a.cache != nil {
		a.cache.Close()
	}
}
