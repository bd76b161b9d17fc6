package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics is nil-safe: every method is a no-op on a nil receiver so callers never
// need to check whether metrics are enabled.
type Metrics struct {
	registry *prometheus.Registry

	apiRequests *prometheus.CounterVec
	apiLatency  *prometheus.HistogramVec
	apiInflight prometheus.Gauge

	interactionsRecorded prometheus.Counter
	choicesRecorded      prometheus.Counter
	analyticsCache       *prometheus.CounterVec
	storeErrors          *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		apiRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "storytelling_api_requests_total",
			Help: "Total API requests by method/route/status.",
		}, []string{"method", "route", "status"}),
		apiLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "storytelling_api_request_duration_seconds",
			Help:    "API request latency in seconds by method/route.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		}, []string{"method", "route"}),
		apiInflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "storytelling_api_inflight_requests",
			Help: "In-flight API requests.",
		}),
		interactionsRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "storytelling_interactions_recorded_total",
			Help: "Interaction events appended to the event log.",
		}),
		choicesRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "storytelling_choices_recorded_total",
			Help: "Reader choices applied to choice counters.",
		}),
		analyticsCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "storytelling_analytics_cache_total",
			Help: "Analytics cache lookups by view/result.",
		}, []string{"view", "result"}),
		storeErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "storytelling_store_errors_total",
			Help: "Failed backing store calls by operation.",
		}, []string{"op"}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.apiRequests,
		m.apiLatency,
		m.apiInflight,
		m.interactionsRecorded,
		m.choicesRecorded,
		m.analyticsCache,
		m.storeErrors,
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) ObserveAPI(method, route, status string, dur time.Duration) {
	if m == nil {
		return
	}
	if method == "" {
		method = "UNKNOWN"
	}
	if route == "" {
		route = "unknown"
	}
	if status == "" {
		status = "0"
	}
	m.apiRequests.WithLabelValues(method, route, status).Inc()
	m.apiLatency.WithLabelValues(method, route).Observe(dur.Seconds())
}

func (m *Metrics) ApiInflightInc() {
	if m == nil {
		return
	}
	m.apiInflight.Inc()
}

func (m *Metrics) ApiInflightDec() {
	if m == nil {
		return
	}
	m.apiInflight.Dec()
}

func (m *Metrics) IncInteractionRecorded() {
	if m == nil {
		return
	}
	m.interactionsRecorded.Inc()
}

func (m *Metrics) IncChoiceRecorded() {
	if m == nil {
		return
	}
	m.choicesRecorded.Inc()
}

// IncAnalyticsCache records a cache lookup; result is hit, miss or error.
func (m *Metrics) IncAnalyticsCache(view, result string) {
	if m == nil {
		return
	}
	m.analyticsCache.WithLabelValues(view, result).Inc()
}

func (m *Metrics) IncStoreError(op string) {
	if m == nil {
		return
	}
	m.storeErrors.WithLabelValues(op).Inc()
}
