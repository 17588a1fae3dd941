package cache

import (
	"strconv"
	"strings"

	"github.com/dgraph-io/ristretto"

	"vitrine-url-api/internal/model"
)

// GenerationCache keeps generation responses keyed by the request that
// produced them. Cached responses are shared and must not be mutated.
type GenerationCache struct {
	cache *ristretto.Cache
}

func New(maxSizePow2 int) (*GenerationCache, error) {
	maxCost := max(1, int64(1)<<maxSizePow2)
	numCounters := max(1, maxCost/1000) // ~1KB per response estimate

	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: numCounters,
		MaxCost:     maxCost,
		BufferItems: 64,
		Metrics:     true,
	})
	if err != nil {
		return nil, err
	}
	return &GenerationCache{cache: cache}, nil
}

// Key identifies a request by every field that influences generation. Each
// field is length-prefixed so no field content can shift into its neighbour.
func Key(req model.URLGenerationRequest) string {
	var b strings.Builder
	for _, field := range []string{
		strconv.Itoa(req.VehicleID),
		req.Brand,
		req.Model,
		strconv.Itoa(req.Year),
		req.City,
		req.State,
		req.Neighborhood,
		req.Language,
	} {
		b.WriteString(strconv.Itoa(len(field)))
		b.WriteByte(':')
		b.WriteString(field)
	}
	return b.String()
}

func (c *GenerationCache) Get(key string) (*model.GenerationResponse, bool) {
	val, found := c.cache.Get(key)
	if !found {
		return nil, false
	}
	return val.(*model.GenerationResponse), true
}

func (c *GenerationCache) Set(key string, resp *model.GenerationResponse) {
	c.cache.Set(key, resp, cost(resp))
}

// Wait blocks until pending writes are applied
func (c *GenerationCache) Wait() {
	c.cache.Wait()
}

func (c *GenerationCache) Close() {
	c.cache.Close()
}

func (c *GenerationCache) Stats() (hits, misses uint64, ratio float64) {
	metrics := c.cache.Metrics
	hits = metrics.Hits()
	misses = metrics.Misses()
	ratio = metrics.Ratio()
	return
}

func cost(resp *model.GenerationResponse) int64 {
	var n int
	for _, u := range resp.CanonicalURLs {
		n += len(u)
	}
	for _, g := range resp.Generations {
		for _, u := range g.RelatedURLs {
			n += len(u)
		}
	}
	return int64(max(1, n))
}
