package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

const namespace = "nc_news"

var (
	httpBuckets  = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
	queryBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5}
)

// Metrics holds every collector the API exports under the nc_news namespace
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBConnectionsOpen        prometheus.Gauge
	DBConnectionsInUse       prometheus.Gauge
	DBConnectionsIdle        prometheus.Gauge
	DBConnectionsMax         prometheus.Gauge
	DBConnectionWaitTotal    prometheus.Counter
	DBConnectionWaitDuration prometheus.Counter
	DBQueryDuration          *prometheus.HistogramVec
	DBQueryErrors            *prometheus.CounterVec

	ArticlesTotal               prometheus.Gauge
	CommentsTotal               prometheus.Gauge
	CommentCreatedTotal         prometheus.Counter
	CommentDeletedTotal         prometheus.Counter
	ArticleVoteAdjustmentsTotal *prometheus.CounterVec

	statsMu          sync.Mutex
	lastWaitCount    int64
	lastWaitDuration float64

	logger *zap.Logger
}

// NewWithLogger registers the collectors with the default registry
func NewWithLogger(logger *zap.Logger) *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer, logger)
}

// NewWithRegistry registers the collectors with registerer. Tests pass a
// fresh prometheus.NewRegistry() so repeated construction does not collide.
func NewWithRegistry(registerer prometheus.Registerer, logger *zap.Logger) *Metrics {
	if logger == nil {
		logger = zap.NewNop()
	}
	f := promauto.With(registerer)

	gauge := func(name, help string) prometheus.Gauge {
		return f.NewGauge(prometheus.GaugeOpts{Namespace: namespace, Name: name, Help: help})
	}
	counter := func(name, help string) prometheus.Counter {
		return f.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: name, Help: help})
	}
	counterVec := func(name, help string, labels ...string) *prometheus.CounterVec {
		return f.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Name: name, Help: help}, labels)
	}
	histogramVec := func(name, help string, buckets []float64, labels ...string) *prometheus.HistogramVec {
		return f.NewHistogramVec(prometheus.HistogramOpts{Namespace: namespace, Name: name, Help: help, Buckets: buckets}, labels)
	}

	return &Metrics{
		HTTPRequestsTotal:   counterVec("http_requests_total", "Total number of HTTP requests", "method", "endpoint", "status"),
		HTTPRequestDuration: histogramVec("http_request_duration_seconds", "HTTP request duration in seconds", httpBuckets, "method", "endpoint"),

		DBConnectionsOpen:        gauge("db_connections_open", "Current number of open database connections"),
		DBConnectionsInUse:       gauge("db_connections_in_use", "Current number of in-use database connections"),
		DBConnectionsIdle:        gauge("db_connections_idle", "Current number of idle database connections"),
		DBConnectionsMax:         gauge("db_connections_max", "Configured maximum of open database connections"),
		DBConnectionWaitTotal:    counter("db_connection_wait_total", "Times a caller waited for a pooled connection"),
		DBConnectionWaitDuration: counter("db_connection_wait_duration_seconds_total", "Seconds spent waiting for pooled connections"),
		DBQueryDuration:          histogramVec("db_query_duration_seconds", "Database statement duration in seconds", queryBuckets, "operation", "table"),
		DBQueryErrors:            counterVec("db_query_errors_total", "Database statements that returned an error", "operation", "table"),

		ArticlesTotal:               gauge("articles_total", "Articles currently stored"),
		CommentsTotal:               gauge("comments_total", "Comments currently stored"),
		CommentCreatedTotal:         counter("comment_created_total", "Comments posted"),
		CommentDeletedTotal:         counter("comment_deleted_total", "Comments deleted"),
		ArticleVoteAdjustmentsTotal: counterVec("article_vote_adjustments_total", "Applied article vote adjustments by direction", "direction"),

		logger: logger,
	}
}

// safeExecute runs fn and logs, rather than propagates, any panic
func (m *Metrics) safeExecute(operation string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("Panic in metrics operation",
				zap.String("operation", operation),
				zap.Any("panic", r),
			)
		}
	}()
	fn()
}
