// Package metrics holds the Prometheus instruments of the URL engine. All
// collectors are registered with the global registry, so importing this
// package is enough to expose them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	GenerationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "url_generations_total",
			Help: "Vehicle generation requests by outcome.",
		}, []string{"outcome"})

	URLsGeneratedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "urls_generated_total",
			Help: "Cumulative number of URLs produced by vehicle generations.",
		})

	DuplicateURLsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "url_duplicates_total",
			Help: "Cumulative number of URLs flagged as duplicates.",
		})

	CacheLookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "url_generation_cache_lookups_total",
			Help: "Generation cache lookups by result.",
		}, []string{"result"})

	BatchVehiclesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "url_batch_vehicles_total",
			Help: "Vehicles processed by batch runs by outcome.",
		}, []string{"outcome"})

	GenerationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "url_generation_duration_seconds",
			Help:    "Time spent generating the URL set of one vehicle.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 12),
		})
)

// Outcome and lookup label values
const (
	OutcomeSuccess = "success"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"

	CacheHit  = "hit"
	CacheMiss = "miss"
)

func init() {
	prometheus.MustRegister(
		GenerationsTotal,
		URLsGeneratedTotal,
		DuplicateURLsTotal,
		CacheLookupsTotal,
		BatchVehiclesTotal,
		GenerationDuration,
	)
}
