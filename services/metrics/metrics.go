package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	StatusOK    = "ok"
	StatusError = "error"

	OutcomeProcessed = "processed"
	OutcomeSkipped   = "skipped"
	OutcomeQualified = "qualified"
)

var (
	uploadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ingest_uploads_total",
		Help: "Total number of report uploads by ingestor variant and status",
	}, []string{"variant", "status"})

	rowsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ingest_rows_total",
		Help: "Total number of report rows by ingestor variant and outcome",
	}, []string{"variant", "outcome"})

	uploadDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ingest_upload_duration_seconds",
		Help:    "Time taken to ingest one upload",
		Buckets: prometheus.ExponentialBuckets(0.05, 2, 12),
	}, []string{"variant"})
)

// ObserveUpload ghi nhận một lần upload kết thúc
func ObserveUpload(variant string, err error, started time.Time) {
	status := StatusOK
	if err != nil {
		status = StatusError
	}
	uploadsTotal.WithLabelValues(variant, status).Inc()
	uploadDuration.WithLabelValues(variant).Observe(time.Since(started).Seconds())
}

// AddRows cộng số dòng theo outcome
func AddRows(variant, outcome string, n int) {
	if n <= 0 {
		return
	}
	rowsTotal.WithLabelValues(variant, outcome).Add(float64(n))
}
