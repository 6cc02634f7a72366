package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ConversionMetrics collects the conversion core's counters and histograms.
type ConversionMetrics struct {
	// Provider chain
	ProviderFetchTotal   *prometheus.CounterVec
	ProviderFailureTotal *prometheus.CounterVec
	FailoverDepth        prometheus.Histogram

	// Rate cache
	CacheHitTotal  *prometheus.CounterVec
	CacheMissTotal prometheus.Counter
	SweepRemoved   prometheus.Counter

	// Conversions
	ConversionTotal    *prometheus.CounterVec
	ConversionDuration prometheus.Histogram
	RestrictedRejected prometheus.Counter
}

// NewConversionMetrics registers all metrics on the given registerer. Tests
// pass a fresh prometheus.NewRegistry to avoid duplicate registration.
func NewConversionMetrics(reg prometheus.Registerer) *ConversionMetrics {
	factory := promauto.With(reg)

	return &ConversionMetrics{
		ProviderFetchTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "fxcore_provider_fetch_total",
			Help: "Rate fetch attempts per provider and outcome",
		}, []string{"provider", "outcome"}),
		ProviderFailureTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "fxcore_provider_failure_total",
			Help: "Provider failures by provider and reason",
		}, []string{"provider", "reason"}),
		FailoverDepth: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "fxcore_failover_depth",
			Help:    "How many providers were tried before a fetch succeeded",
			Buckets: prometheus.LinearBuckets(1, 1, 5),
		}),
		CacheHitTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "fxcore_rate_cache_hit_total",
			Help: "Rate cache hits by tier (memory, store, reciprocal)",
		}, []string{"tier"}),
		CacheMissTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "fxcore_rate_cache_miss_total",
			Help: "Rate cache misses that triggered a provider fetch",
		}),
		SweepRemoved: factory.NewCounter(prometheus.CounterOpts{
			Name: "fxcore_rate_cache_sweep_removed_total",
			Help: "Persistent rate rows removed by retention sweeps",
		}),
		ConversionTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "fxcore_conversion_total",
			Help: "Conversions by case and outcome",
		}, []string{"case", "outcome"}),
		ConversionDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "fxcore_conversion_duration_seconds",
			Help:    "End-to-end Convert latency",
			Buckets: prometheus.DefBuckets,
		}),
		RestrictedRejected: factory.NewCounter(prometheus.CounterOpts{
			Name: "fxcore_restricted_rejected_total",
			Help: "Conversions rejected by the restricted currency policy",
		}),
	}
}
