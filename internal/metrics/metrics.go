package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Ingestion metrics
	IngestArticlesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_ingest_articles_total",
			Help: "Candidates that reached a terminal ingestion stage",
		},
		[]string{"pipeline", "stage"},
	)

	IngestRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_ingest_runs_total",
			Help: "Total number of ingestion runs",
		},
		[]string{"pipeline", "status"},
	)

	IngestRunDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "news_ingest_run_duration_seconds",
			Help:    "Ingestion run duration in seconds",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600},
		},
		[]string{"pipeline"},
	)

	// HTTP request metrics
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

func RecordArticle(pipeline, stage string) {
	IngestArticlesTotal.WithLabelValues(pipeline, stage).Inc()
}

func RecordRun(pipeline string, err error, d time.Duration) {
	status := "success"
	if err != nil {
		status = "error"
	}
	IngestRunsTotal.WithLabelValues(pipeline, status).Inc()
	IngestRunDuration.WithLabelValues(pipeline).Observe(d.Seconds())
}

func ObserveHTTP(method, path string, status int, d time.Duration) {
	HttpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	HttpRequestDuration.WithLabelValues(method, path).Observe(d.Seconds())
}

func Handler() http.Handler {
	return promhttp.Handler()
}
