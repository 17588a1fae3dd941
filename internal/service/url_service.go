package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"

	"vitrine-url-api/internal/cache"
	"vitrine-url-api/internal/dedup"
	"vitrine-url-api/internal/generator"
	"vitrine-url-api/internal/metrics"
	"vitrine-url-api/internal/model"
	"vitrine-url-api/internal/pattern"
	"vitrine-url-api/internal/sitemap"
	"vitrine-url-api/internal/validation"
)

var (
	ErrInvalidRequest  = errors.New("invalid request")
	ErrInvalidCategory = errors.New("invalid template category")
)

// Cache stores generation responses by request key
type Cache interface {
	Get(key string) (*model.GenerationResponse, bool)
	Set(key string, resp *model.GenerationResponse)
}

type URLService struct {
	generator *generator.Generator
	cache     Cache
	urls      *validation.URLListValidator
	validate  *validator.Validate
	logger    *slog.Logger
}

type Option func(*URLService)

// WithCache enables response caching
func WithCache(c Cache) Option {
	return func(s *URLService) {
		s.cache = c
	}
}

// WithURLListValidator bounds the URL lists accepted by CheckDuplicates and
// ValidateURLs
func WithURLListValidator(v *validation.URLListValidator) Option {
	return func(s *URLService) {
		s.urls = v
	}
}

func NewURLService(gen *generator.Generator, logger *slog.Logger, opts ...Option) *URLService {
	s := &URLService{
		generator: gen,
		validate:  validator.New(),
		logger:    logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// TemplateCount is the number of catalog templates rendered per vehicle
func (s *URLService) TemplateCount() int {
	return s.generator.TemplateCount()
}

// Generate renders every template for the vehicle and runs the duplicate
// check over the flattened URL set
func (s *URLService) Generate(ctx context.Context, req model.URLGenerationRequest) (*model.GenerationResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := s.validate.Struct(req); err != nil {
		metrics.GenerationsTotal.WithLabelValues(metrics.OutcomeInvalid).Inc()
		return nil, fmt.Errorf("%w: %s", ErrInvalidRequest, err)
	}

	key := cache.Key(req)
	if s.cache != nil {
		if resp, ok := s.cache.Get(key); ok {
			metrics.CacheLookupsTotal.WithLabelValues(metrics.CacheHit).Inc()
			metrics.GenerationsTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
			return resp, nil
		}
		metrics.CacheLookupsTotal.WithLabelValues(metrics.CacheMiss).Inc()
	}

	start := time.Now()

	generations := s.generator.GenerateAll(req)
	urls := generator.Flatten(generations)
	results := dedup.Check(urls)
	duplicateCount := dedup.CountDuplicates(results)

	resp := &model.GenerationResponse{
		VehicleID:      req.VehicleID,
		Generations:    generations,
		CanonicalURLs:  generator.Canonicals(generations),
		Duplicates:     flagged(results),
		TotalURLs:      len(urls),
		DuplicateCount: duplicateCount,
	}

	metrics.GenerationDuration.Observe(time.Since(start).Seconds())
	metrics.GenerationsTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	metrics.URLsGeneratedTotal.Add(float64(len(urls)))
	metrics.DuplicateURLsTotal.Add(float64(duplicateCount))

	s.logger.Debug("generated vehicle urls",
		"vehicle_id", req.VehicleID,
		"templates", len(generations),
		"total_urls", len(urls),
		"duplicates", duplicateCount,
	)

	if s.cache != nil {
		s.cache.Set(key, resp)
	}

	return resp, nil
}

// flagged keeps the first verdict of every raw URL that has duplicates
func flagged(results []model.DuplicateCheckResult) []model.DuplicateCheckResult {
	out := []model.DuplicateCheckResult{}
	seen := make(map[string]bool)
	for _, r := range results {
		if !r.IsDuplicate || seen[r.URL] {
			continue
		}
		seen[r.URL] = true
		out = append(out, r)
	}
	return out
}

// Canonical builds the short canonical list. The vehicle id is not needed.
func (s *URLService) Canonical(req model.URLGenerationRequest) ([]string, error) {
	if err := s.validate.StructExcept(req, "VehicleID"); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRequest, err)
	}
	return generator.CanonicalURLs(req), nil
}

// CheckDuplicates runs the duplicate checker over a caller supplied list
func (s *URLService) CheckDuplicates(urls []string) (*model.DuplicatesResponse, error) {
	if err := s.checkList(urls); err != nil {
		return nil, err
	}

	results := dedup.Check(urls)
	return &model.DuplicatesResponse{
		Results:        results,
		DuplicateCount: dedup.CountDuplicates(results),
	}, nil
}

// ValidateURLs reports the syntactic validity of each URL
func (s *URLService) ValidateURLs(urls []string) (*model.ValidateURLsResponse, error) {
	if err := s.checkList(urls); err != nil {
		return nil, err
	}

	results := make([]model.URLValidity, len(urls))
	for i, u := range urls {
		results[i] = model.URLValidity{URL: u, Valid: validation.IsValidURL(u)}
	}
	return &model.ValidateURLsResponse{Results: results}, nil
}

func (s *URLService) checkList(urls []string) error {
	if s.urls == nil {
		return nil
	}
	if err := s.urls.ValidateBatch(urls); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return nil
}

// Templates lists the catalog, optionally filtered by category
func (s *URLService) Templates(category string) ([]pattern.Template, error) {
	if category == "" {
		return pattern.Templates(), nil
	}

	c := pattern.Category(category)
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCategory, category)
	}
	return pattern.ByCategory(c), nil
}

// SitemapUpdate validates the changes and stamps them for the sitemap backend
func (s *URLService) SitemapUpdate(req model.SitemapChangesRequest) (model.SitemapUpdateRequest, error) {
	if err := s.validate.Struct(req); err != nil {
		return model.SitemapUpdateRequest{}, fmt.Errorf("%w: %s", ErrInvalidRequest, err)
	}
	return sitemap.NewUpdateRequest(req.VehicleID, req.URLChanges), nil
}

// GenerationSitemap generates the vehicle URLs and describes its canonical
// URLs as created sitemap entries
func (s *URLService) GenerationSitemap(ctx context.Context, req model.URLGenerationRequest) (model.SitemapUpdateRequest, error) {
	resp, err := s.Generate(ctx, req)
	if err != nil {
		return model.SitemapUpdateRequest{}, err
	}
	changes := sitemap.ChangesFromGeneration(resp.CanonicalURLs)
	return sitemap.NewUpdateRequest(req.VehicleID, changes), nil
}
