// Package metrics provides Prometheus metrics for the scoutboard service.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default metrics configuration constants.
const (
	defaultRefreshInterval = 10 * time.Second
)

// Manager manages all Prometheus metrics for the scoutboard service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	refreshInterval  time.Duration
	registry         prometheus.Registerer

	// Catalog metrics
	catalogPlayers prometheus.Gauge
	catalogMatches prometheus.Gauge
	lookupMisses   *prometheus.CounterVec

	// View metrics
	pageRenders       *prometheus.CounterVec
	filterResultSize  *prometheus.HistogramVec
	comparisons       prometheus.Counter
	comparisonOutcome *prometheus.CounterVec

	// Live match metrics
	liveTicks   *prometheus.CounterVec
	liveMinute  *prometheus.GaugeVec
	liveClocks  prometheus.Gauge
	liveStopped *prometheus.CounterVec

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	errorRateByType     *prometheus.CounterVec
	errorRateByEndpoint *prometheus.CounterVec

	// System metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
	customRegistry.MustRegister(collectors.NewBuildInfoCollector())
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "scoutboard",
		subsystem:        "",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		refreshInterval:  defaultRefreshInterval,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// RefreshInterval reports how often gauges should be refreshed by background updaters.
func (m *Manager) RefreshInterval() time.Duration {
	return m.refreshInterval
}

// Enabled reports whether recording is active.
func (m *Manager) Enabled() bool {
	return m.enabled
}

func (m *Manager) initializeMetrics() { //nolint:funlen // one place for every metric definition
	auto := promauto.With(m.registry)

	m.catalogPlayers = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "catalog_players",
		Help:      "Number of players in the scouting catalog",
	})

	m.catalogMatches = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "catalog_matches",
		Help:      "Number of matches in the scouting catalog",
	})

	m.lookupMisses = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "lookup_misses_total",
			Help:      "Lookups of unknown players or matches",
		},
		[]string{"entity"},
	)

	m.pageRenders = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "page_renders_total",
			Help:      "Rendered HTML views by view name and status",
		},
		[]string{"view", "status_code"},
	)

	m.filterResultSize = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "filter_result_size",
			Help:      "Number of players returned by list and squad filters",
			Buckets:   []float64{0, 1, 2, 4, 8, 16, 32},
		},
		[]string{"view"},
	)

	m.comparisons = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "comparisons_total",
		Help:      "Completed two-player comparisons",
	})

	m.comparisonOutcome = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "comparison_outcomes_total",
			Help:      "Comparison outcomes by how the recommendation was decided",
		},
		[]string{"outcome"},
	)

	m.liveTicks = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "live_ticks_total",
			Help:      "Minute ticks applied to live match clocks",
		},
		[]string{"match_id"},
	)

	m.liveMinute = auto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "live_minute",
			Help:      "Displayed minute of each live match clock",
		},
		[]string{"match_id"},
	)

	m.liveClocks = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "live_clocks_running",
		Help:      "Live match clocks whose ticker is still running",
	})

	m.liveStopped = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "live_clocks_stopped_total",
			Help:      "Live match clocks stopped, by reason",
		},
		[]string{"reason"},
	)

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.errorRateByType = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_type_total",
			Help:      "Total number of errors by type",
		},
		[]string{"error_type", "severity"},
	)

	m.errorRateByEndpoint = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_endpoint_total",
			Help:      "Total number of errors by endpoint",
		},
		[]string{"endpoint", "method", "error_type"},
	)

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_usage_bytes",
		Help:      "System memory usage in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutine_count",
		Help:      "Number of goroutines",
	})

	m.systemGCPauseTime = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_gc_pause_time_milliseconds",
		Help:      "GC pause time in milliseconds",
		Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
	})
}

// Catalog Metrics Functions.

// UpdateCatalogSize sets the player and match gauges.
func UpdateCatalogSize(players, matches int) {
	if !globalManager.enabled {
		return
	}
	globalManager.catalogPlayers.Set(float64(players))
	globalManager.catalogMatches.Set(float64(matches))
}

// RecordLookupMiss counts a lookup of an unknown entity ("player" or "match").
func RecordLookupMiss(entity string) {
	if !globalManager.enabled {
		return
	}
	globalManager.lookupMisses.WithLabelValues(entity).Inc()
}

// View Metrics Functions.

// RecordPageRender counts a rendered view.
func RecordPageRender(view string, statusCode int) {
	if !globalManager.enabled {
		return
	}
	globalManager.pageRenders.WithLabelValues(view, strconv.Itoa(statusCode)).Inc()
}

// RecordFilterResult observes the number of rows a filter produced.
func RecordFilterResult(view string, rows int) {
	if !globalManager.enabled {
		return
	}
	globalManager.filterResultSize.WithLabelValues(view).Observe(float64(rows))
}

// RecordComparison counts a comparison and how it was decided ("advantage" or "tie").
func RecordComparison(outcome string) {
	if !globalManager.enabled {
		return
	}
	globalManager.comparisons.Inc()
	globalManager.comparisonOutcome.WithLabelValues(outcome).Inc()
}

// Live Match Metrics Functions.

// RecordLiveTick counts a tick and publishes the new minute for a match.
func RecordLiveTick(matchID string, minute int) {
	if !globalManager.enabled {
		return
	}
	globalManager.liveTicks.WithLabelValues(matchID).Inc()
	globalManager.liveMinute.WithLabelValues(matchID).Set(float64(minute))
}

// UpdateLiveMinute publishes a minute without counting a tick.
func UpdateLiveMinute(matchID string, minute int) {
	if !globalManager.enabled {
		return
	}
	globalManager.liveMinute.WithLabelValues(matchID).Set(float64(minute))
}

// UpdateLiveClocks sets the number of running clocks.
func UpdateLiveClocks(running int) {
	if !globalManager.enabled {
		return
	}
	globalManager.liveClocks.Set(float64(running))
}

// RecordLiveClockStopped counts a stopped clock ("full_time", "stopped", "shutdown").
func RecordLiveClockStopped(reason string) {
	if !globalManager.enabled {
		return
	}
	globalManager.liveStopped.WithLabelValues(reason).Inc()
}

// HTTP Metrics Functions.

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	if !globalManager.enabled {
		return
	}
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordErrorByType records an error with type and severity labels.
func RecordErrorByType(errorType, severity string) {
	if !globalManager.enabled {
		return
	}
	globalManager.errorRateByType.WithLabelValues(errorType, severity).Inc()
}

// RecordErrorByEndpoint records an error with endpoint, method, and error type labels.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	if !globalManager.enabled {
		return
	}
	globalManager.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// System Performance Metrics Functions.

// UpdateSystemMemoryUsage sets the system memory usage in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	if !globalManager.enabled {
		return
	}
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	if !globalManager.enabled {
		return
	}
	globalManager.systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime records GC pause time in milliseconds.
func RecordSystemGCPauseTime(pauseMs float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.systemGCPauseTime.Observe(pauseMs)
}

// Configure applies the runtime options (enabled, refresh interval) to the
// global manager. Names and buckets are fixed once the metrics are registered.
func Configure(opts ...Option) {
	next := &Manager{enabled: globalManager.enabled, refreshInterval: globalManager.refreshInterval}
	for _, opt := range opts {
		opt(next)
	}
	globalManager.enabled = next.enabled
	globalManager.refreshInterval = next.refreshInterval
}

// Enabled reports whether the global manager records anything.
func Enabled() bool {
	return globalManager.enabled
}

// RefreshInterval is how often background updaters refresh the global gauges.
func RefreshInterval() time.Duration {
	return globalManager.refreshInterval
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
