package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitrine-url-api/internal/metrics"
)

func TestCountersAreRegistered(t *testing.T) {
	before := testutil.ToFloat64(metrics.URLsGeneratedTotal)
	metrics.URLsGeneratedTotal.Add(3)
	assert.Equal(t, before+3, testutil.ToFloat64(metrics.URLsGeneratedTotal))

	hits := metrics.CacheLookupsTotal.WithLabelValues(metrics.CacheHit)
	before = testutil.ToFloat64(hits)
	hits.Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(hits))
}

func TestGatherIncludesEngineMetrics(t *testing.T) {
	metrics.GenerationsTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()

	count, err := testutil.GatherAndCount(prometheus.DefaultGatherer, "url_generations_total")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, count, 1)
}
