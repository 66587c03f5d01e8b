// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	ledgerEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_events_appended_total",
			Help: "Total number of order events appended to the ledger",
		},
		[]string{"event_type"},
	)

	ledgerRejectionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_rejections_total",
			Help: "Total number of rejected ledger operations",
		},
		[]string{"class"},
	)

	ordersByState = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "ledger_orders_by_state",
			Help: "Number of orders per current state",
		},
		[]string{"state"},
	)
)

func init() {
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(httpRequestDuration)
	prometheus.MustRegister(ledgerEventsTotal)
	prometheus.MustRegister(ledgerRejectionsTotal)
	prometheus.MustRegister(ordersByState)
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

func RecordHTTPRequest(method, endpoint, status string, seconds float64) {
	httpRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	httpRequestDuration.WithLabelValues(method, endpoint).Observe(seconds)
}

func RecordEventAppended(eventType string) {
	ledgerEventsTotal.WithLabelValues(eventType).Inc()
}

func RecordRejection(class string) {
	ledgerRejectionsTotal.WithLabelValues(class).Inc()
}

// SetOrdersByState replaces the gauge values. States absent from counts are
// reset to zero so orders that moved on stop being reported.
func SetOrdersByState(counts map[string]int64) {
	ordersByState.Reset()
	for state, n := range counts {
		ordersByState.WithLabelValues(state).Set(float64(n))
	}
}
