package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics aggregates the service's Prometheus collectors on a private
// registry so tests can build isolated instances.
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal    *prometheus.CounterVec
	roastsTotal      *prometheus.CounterVec
	upstreamDuration prometheus.Histogram
}

// New builds and registers the collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	requestsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "roast",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed.",
		},
		[]string{"method", "path", "status"},
	)
	roastsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "roast",
			Name:      "roasts_total",
			Help:      "Roast pipeline outcomes by kind.",
		},
		[]string{"kind", "outcome"},
	)
	upstreamDuration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "roast",
			Name:      "upstream_duration_seconds",
			Help:      "Upstream completion call duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
	)

	registry.MustRegister(requestsTotal, roastsTotal, upstreamDuration)

	return &Metrics{
		registry:         registry,
		requestsTotal:    requestsTotal,
		roastsTotal:      roastsTotal,
		upstreamDuration: upstreamDuration,
	}
}

// ObserveRoast records one pipeline outcome for the given request kind.
func (m *Metrics) ObserveRoast(kind, outcome string) {
	if m == nil {
		return
	}
	m.roastsTotal.WithLabelValues(kind, outcome).Inc()
}

// ObserveUpstream records the duration of an upstream completion call.
func (m *Metrics) ObserveUpstream(d time.Duration) {
	if m == nil {
		return
	}
	m.upstreamDuration.Observe(d.Seconds())
}

// Middleware counts completed requests by method, route and status.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.requestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

// Handler exposes the registry in Prometheus text format.
func (m *Metrics) Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
	return gin.WrapH(h)
}
