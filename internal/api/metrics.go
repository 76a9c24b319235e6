package api

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus instruments for the HTTP surface.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec // labels: path, method, status
	RequestDuration *prometheus.HistogramVec
}

// NewMetrics creates the API metrics and registers them with the default
// Prometheus registry, tolerating re-registration so tests can construct
// multiple routers.
func NewMetrics() *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lusolens",
			Name:      "http_requests_total",
			Help:      "Total HTTP requests served.",
		}, []string{"path", "method", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "lusolens",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5},
		}, []string{"path"}),
	}

	for _, collector := range []prometheus.Collector{m.RequestsTotal, m.RequestDuration} {
		if err := prometheus.Register(collector); err != nil {
			if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
				switch existing := are.ExistingCollector.(type) {
				case *prometheus.CounterVec:
					m.RequestsTotal = existing
				case *prometheus.HistogramVec:
					m.RequestDuration = existing
				}
			}
		}
	}
	return m
}

// Middleware records a counter and latency sample per completed request.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.RequestsTotal.WithLabelValues(path, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		m.RequestDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
	}
}
