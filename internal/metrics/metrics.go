// Package metrics registers Prometheus collectors for the analyzer API.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus collectors for the analyzer service.
var Metrics = struct {
	AnalysesTotal    *prometheus.CounterVec
	AnalysisDuration prometheus.Histogram
	QuotaUnitsUsed   prometheus.Counter
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight prometheus.Gauge
	CacheHits        prometheus.Counter
	CacheMisses      prometheus.Counter
	DBPoolActive     prometheus.GaugeFunc
	DBPoolIdle       prometheus.GaugeFunc
}{}

// Init registers all Prometheus metrics. Call once at startup.
func Init(pool *pgxpool.Pool) {
	Metrics.AnalysesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analyzer_analyses_total",
			Help: "Total channel analyses performed, by outcome.",
		},
		[]string{"status"},
	)

	Metrics.AnalysisDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "analyzer_analysis_duration_seconds",
			Help:    "Duration of full channel analyses.",
			Buckets: prometheus.DefBuckets,
		},
	)

	Metrics.QuotaUnitsUsed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "analyzer_youtube_quota_units_total",
			Help: "Estimated YouTube API quota units consumed.",
		},
	)

	Metrics.RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "analyzer_api_request_duration_seconds",
			Help:    "HTTP request duration in seconds, by endpoint and method.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method", "status"},
	)

	Metrics.RequestsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "analyzer_requests_in_flight",
			Help: "Number of HTTP requests currently being served.",
		},
	)

	Metrics.CacheHits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "analyzer_cache_hits_total",
			Help: "Total Redis cache hits.",
		},
	)

	Metrics.CacheMisses = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "analyzer_cache_misses_total",
			Help: "Total Redis cache misses.",
		},
	)

	if pool != nil {
		Metrics.DBPoolActive = prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "analyzer_db_connection_pool_active",
				Help: "Number of active database connections.",
			},
			func() float64 {
				return float64(pool.Stat().AcquiredConns())
			},
		)

		Metrics.DBPoolIdle = prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "analyzer_db_connection_pool_idle",
				Help: "Number of idle database connections.",
			},
			func() float64 {
				return float64(pool.Stat().IdleConns())
			},
		)

		prometheus.MustRegister(Metrics.DBPoolActive)
		prometheus.MustRegister(Metrics.DBPoolIdle)
	}

	prometheus.MustRegister(
		Metrics.AnalysesTotal,
		Metrics.AnalysisDuration,
		Metrics.QuotaUnitsUsed,
		Metrics.RequestDuration,
		Metrics.RequestsInFlight,
		Metrics.CacheHits,
		Metrics.CacheMisses,
	)
}

// ObserveAnalysis records one completed analysis. Safe to call before Init;
// it is a no-op until the collectors are registered.
func ObserveAnalysis(status string, seconds float64) {
	if Metrics.AnalysesTotal == nil {
		return
	}
	Metrics.AnalysesTotal.WithLabelValues(status).Inc()
	Metrics.AnalysisDuration.Observe(seconds)
}

// AddQuotaUnits records estimated YouTube quota consumption.
func AddQuotaUnits(units int) {
	if Metrics.QuotaUnitsUsed == nil {
		return
	}
	Metrics.QuotaUnitsUsed.Add(float64(units))
}

// ObserveCache records a cache lookup outcome.
func ObserveCache(hit bool) {
	if Metrics.CacheHits == nil {
		return
	}
	if hit {
		Metrics.CacheHits.Inc()
	} else {
		Metrics.CacheMisses.Inc()
	}
}

// Middleware records request duration and in-flight count for Prometheus.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}

		Metrics.RequestsInFlight.Inc()
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		Metrics.RequestDuration.WithLabelValues(endpoint, c.Request.Method, status).Observe(duration)
		Metrics.RequestsInFlight.Dec()
	}
}

// Handler serves the Prometheus /metrics endpoint.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
