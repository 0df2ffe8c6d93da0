package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type WorkerMetrics struct {
	registry *prometheus.Registry

	ingestTotal     *prometheus.CounterVec
	ingestDuration  *prometheus.HistogramVec
	ingestInFlight  prometheus.Gauge
	chunksProcessed *prometheus.CounterVec
}

func NewWorkerMetrics(service string) *WorkerMetrics {
	registry := prometheus.NewRegistry()

	ingestTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "chatmate",
			Subsystem: "worker",
			Name:      "document_ingest_total",
			Help:      "Total ingested documents by status.",
		},
		[]string{"service", "status"},
	)
	ingestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "chatmate",
			Subsystem: "worker",
			Name:      "document_ingest_duration_seconds",
			Help:      "Document ingestion duration in seconds by status.",
			Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600, 1800},
		},
		[]string{"service", "status"},
	)
	ingestInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "chatmate",
			Subsystem: "worker",
			Name:      "document_ingest_in_flight",
			Help:      "Number of in-flight document ingestions.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	chunksProcessed := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "chatmate",
			Subsystem: "worker",
			Name:      "chunks_processed_total",
			Help:      "Chunks processed by outcome (upserted or skipped).",
		},
		[]string{"service", "outcome"},
	)

	registry.MustRegister(ingestTotal, ingestDuration, ingestInFlight, chunksProcessed)

	return &WorkerMetrics{
		registry:        registry,
		ingestTotal:     ingestTotal,
		ingestDuration:  ingestDuration,
		ingestInFlight:  ingestInFlight,
		chunksProcessed: chunksProcessed,
	}
}

func (m *WorkerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *WorkerMetrics) StartIngest() {
	m.ingestInFlight.Inc()
}

func (m *WorkerMetrics) FinishIngest(service string, duration time.Duration, err error) {
	m.ingestInFlight.Dec()

	status := "success"
	if err != nil {
		status = "error"
	}
	m.ingestTotal.WithLabelValues(service, status).Inc()
	m.ingestDuration.WithLabelValues(service, status).Observe(duration.Seconds())
}

func (m *WorkerMetrics) AddChunks(service string, upserted, skipped int) {
	if upserted > 0 {
		m.chunksProcessed.WithLabelValues(service, "upserted").Add(float64(upserted))
	}
	if skipped > 0 {
		m.chunksProcessed.WithLabelValues(service, "skipped").Add(float64(skipped))
	}
}
