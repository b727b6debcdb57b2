// Package metrics exposes Prometheus instrumentation for the chain sync loops.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	// Scanner
	EventsWritten   *prometheus.CounterVec
	EventsDuplicate *prometheus.CounterVec
	EventsSkipped   *prometheus.CounterVec
	ChunksCommitted prometheus.Counter
	ScanErrors      prometheus.Counter
	Checkpoint      prometheus.Gauge
	ChainHead       prometheus.Gauge

	// Reconciler
	ReconcileRuns      prometheus.Counter
	ReconcileDuration  prometheus.Histogram
	ProjectsReconciled *prometheus.CounterVec
	ReconcileErrors    *prometheus.CounterVec

	// Publisher
	ProjectsPublished prometheus.Counter
	PublishErrors     prometheus.Counter

	registry *prometheus.Registry
}

// New builds the collectors on a private registry so that several instances
// can coexist in tests.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
	}

	m.EventsWritten = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "openfund",
		Subsystem: "scanner",
		Name:      "events_written_total",
		Help:      "Ledger rows inserted from contract events",
	}, []string{"type"})
	m.EventsDuplicate = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "openfund",
		Subsystem: "scanner",
		Name:      "events_duplicate_total",
		Help:      "Contract events that were already present in the ledger",
	}, []string{"type"})
	m.EventsSkipped = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "openfund",
		Subsystem: "scanner",
		Name:      "events_skipped_total",
		Help:      "Contract events that could not be decoded",
	}, []string{"reason"})
	m.ChunksCommitted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "openfund",
		Subsystem: "scanner",
		Name:      "chunks_committed_total",
		Help:      "Block ranges fully ingested and checkpointed",
	})
	m.ScanErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "openfund",
		Subsystem: "scanner",
		Name:      "errors_total",
		Help:      "Scan cycles that ended in an error",
	})
	m.Checkpoint = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "openfund",
		Subsystem: "scanner",
		Name:      "checkpoint_block",
		Help:      "Last block whose events are committed",
	})
	m.ChainHead = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "openfund",
		Subsystem: "scanner",
		Name:      "chain_head_block",
		Help:      "Latest block number reported by the node",
	})

	m.ReconcileRuns = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "openfund",
		Subsystem: "reconciler",
		Name:      "runs_total",
		Help:      "Reconciliation passes started",
	})
	m.ReconcileDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "openfund",
		Subsystem: "reconciler",
		Name:      "run_duration_seconds",
		Help:      "Duration of a reconciliation pass",
		Buckets:   prometheus.DefBuckets,
	})
	m.ProjectsReconciled = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "openfund",
		Subsystem: "reconciler",
		Name:      "projects_total",
		Help:      "Project projections written, by resulting funding status",
	}, []string{"status"})
	m.ReconcileErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "openfund",
		Subsystem: "reconciler",
		Name:      "errors_total",
		Help:      "Reconciliation failures by reason",
	}, []string{"reason"})

	m.ProjectsPublished = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "openfund",
		Subsystem: "publisher",
		Name:      "projects_total",
		Help:      "Projects created on chain",
	})
	m.PublishErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "openfund",
		Subsystem: "publisher",
		Name:      "errors_total",
		Help:      "Failed createProject submissions",
	})

	m.registry.MustRegister(
		m.EventsWritten,
		m.EventsDuplicate,
		m.EventsSkipped,
		m.ChunksCommitted,
		m.ScanErrors,
		m.Checkpoint,
		m.ChainHead,
		m.ReconcileRuns,
		m.ReconcileDuration,
		m.ProjectsReconciled,
		m.ReconcileErrors,
		m.ProjectsPublished,
		m.PublishErrors,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
