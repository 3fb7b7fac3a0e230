package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedirectsTotal counts resolved requests by outcome and lifecycle state
	RedirectsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "yourlinks_redirects_total",
			Help: "Total number of resolved requests by outcome and link state",
		},
		[]string{"outcome", "state"},
	)

	// ResolveDuration tracks end-to-end resolution latency
	ResolveDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "yourlinks_resolve_duration_seconds",
			Help:    "Duration of redirect resolution in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
	)

	// ClicksRecordedTotal counts recorded click events
	ClicksRecordedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "yourlinks_clicks_recorded_total",
			Help: "Total number of click events recorded",
		},
	)

	// ClickRecordFailuresTotal counts best-effort click recording failures
	ClickRecordFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "yourlinks_click_record_failures_total",
			Help: "Total number of failed click recording effects",
		},
	)

	// CacheHitsTotal counts link cache hits
	CacheHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "yourlinks_link_cache_hits_total",
			Help: "Total number of link cache hits",
		},
	)

	// CacheMissesTotal counts link cache misses
	CacheMissesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "yourlinks_link_cache_misses_total",
			Help: "Total number of link cache misses",
		},
	)
)

// RecordOutcome increments the redirect counter for one resolved request
func RecordOutcome(outcome, state string) {
	RedirectsTotal.WithLabelValues(outcome, state).Inc()
}

// RecordClick increments the recorded clicks counter
func RecordClick() {
	ClicksRecordedTotal.Inc()
}

// RecordClickFailure increments the click recording failure counter
func RecordClickFailure() {
	ClickRecordFailuresTotal.Inc()
}

// RecordCacheHit increments the link cache hit counter
func RecordCacheHit() {
	CacheHitsTotal.Inc()
}

// RecordCacheMiss increments the link cache miss counter
func RecordCacheMiss() {
	CacheMissesTotal.Inc()
}
