// Package metrics holds the Prometheus collectors of the dinner service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "dinner"

// Metrics groups every collector the service exports.
type Metrics struct {
	OrdersCreated   prometheus.Counter
	OrderChanges    *prometheus.CounterVec
	PublishFailures prometheus.Counter
	LatencyMS       *prometheus.HistogramVec

	gatherer prometheus.Gatherer
}

// New creates the collectors and registers them with reg.
// Passing prometheus.DefaultRegisterer exposes them on the process-wide /metrics endpoint.
func New(reg prometheus.Registerer) *Metrics {
	created := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of orders placed.",
	})
	changes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "order_changes_total",
		Help:      "Total number of committed order changes by resulting status.",
	}, []string{"status"})
	failures := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "event_publish_failures_total",
		Help:      "Total number of order events that could not be published.",
	})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"method", "route", "code"})

	reg.MustRegister(created, changes, failures, latency)

	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	return &Metrics{
		OrdersCreated:   created,
		OrderChanges:    changes,
		PublishFailures: failures,
		LatencyMS:       latency,
		gatherer:        gatherer,
	}
}

// Handler serves the collectors in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
