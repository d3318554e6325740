// Package metrics records per-operation request counts and latencies for the
// post API and exposes them in Prometheus text format.
//
// The post counters live in a private registry. Handler serves them together
// with the default registry, where WAFFLE keeps its Go, process and HTTP
// collectors.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds the post API metrics. Each Collector owns its registry, so
// tests can build as many as they like.
type Collector struct {
	registry *prometheus.Registry

	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New creates a Collector whose metric names are prefixed with namespace.
func New(namespace string) *Collector {
	registry := prometheus.NewRegistry()

	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "post_requests_total",
			Help:      "Post API requests by operation and response status.",
		},
		[]string{"op", "status"},
	)

	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "post_request_duration_seconds",
			Help:      "Post API request latency by operation.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"op"},
	)

	registry.MustRegister(requests, duration)

	return &Collector{
		registry: registry,
		requests: requests,
		duration: duration,
	}
}

// Observe records one finished request. A nil Collector is a no-op.
func (c *Collector) Observe(op string, status int, took time.Duration) {
	if c == nil {
		return
	}
	c.requests.WithLabelValues(op, strconv.Itoa(status)).Inc()
	c.duration.WithLabelValues(op).Observe(took.Seconds())
}

// Handler serves the post metrics and the default registry in Prometheus
// exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(
		prometheus.Gatherers{c.registry, prometheus.DefaultGatherer},
		promhttp.HandlerOpts{},
	)
}
