package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "usina_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "usina_http_request_duration_seconds",
			Help:    "Histogram of HTTP request latencies",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	ViewFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "usina_view_fallback_total",
			Help: "Reads answered by joining base tables because a view was missing",
		},
		[]string{"relation"},
	)

	ProcedureFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "usina_procedure_fallback_total",
			Help: "Writes done directly on tables because a stored procedure was missing",
		},
		[]string{"procedure"},
	)

	DistributionReports = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "usina_distribution_reports_total",
			Help: "Lead distribution pivots built, by row axis",
		},
		[]string{"axis"},
	)
)

// Middleware records request counts and latencies per route template.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		HTTPRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		HTTPRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
