// Package metrics holds the Prometheus metrics of the ledger daemon. Every
// method is safe on a nil *Metrics so that callers may run without metrics.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics provides observability for the ledger daemon.
type Metrics struct {
	registry *prometheus.Registry

	// HTTP request latency by route pattern, method and status
	RequestDuration *prometheus.HistogramVec

	// Submitted transactions by kind
	TxSubmitted *prometheus.CounterVec

	// Settled transactions by kind and final status
	TxSettled *prometheus.CounterVec

	BlocksMined prometheus.Counter

	// Gateway operations by operation and outcome
	GatewayOps *prometheus.CounterVec
}

// New creates a Metrics instance backed by its own registry, with the Go
// runtime and process collectors attached.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "transcript_ledger_http_request_duration_seconds",
			Help:    "Duration of ledger API requests",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"route", "method", "status"}),

		TxSubmitted: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "transcript_ledger_tx_submitted_total",
			Help: "Transactions accepted into the pool by kind",
		}, []string{"kind"}),

		TxSettled: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "transcript_ledger_tx_settled_total",
			Help: "Transactions settled by kind and status",
		}, []string{"kind", "status"}), // status: "confirmed", "reverted"

		BlocksMined: factory.NewCounter(prometheus.CounterOpts{
			Name: "transcript_ledger_blocks_mined_total",
			Help: "Blocks containing at least one transaction",
		}),

		GatewayOps: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "transcript_ledger_gateway_operations_total",
			Help: "Relayer operations by operation and outcome",
		}, []string{"operation", "outcome"}),
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry, e.g. for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) ObserveRequest(route, method, status string, d time.Duration) {
	if m != nil {
		m.RequestDuration.WithLabelValues(route, method, status).Observe(d.Seconds())
	}
}

func (m *Metrics) IncrementSubmitted(kind string) {
	if m != nil {
		m.TxSubmitted.WithLabelValues(kind).Inc()
	}
}

func (m *Metrics) IncrementSettled(kind, status string) {
	if m != nil {
		m.TxSettled.WithLabelValues(kind, status).Inc()
	}
}

func (m *Metrics) IncrementBlocks() {
	if m != nil {
		m.BlocksMined.Inc()
	}
}

// IncrementGatewayOp records a relayer operation; ok selects the outcome
// label.
func (m *Metrics) IncrementGatewayOp(operation string, ok bool) {
	if m == nil {
		return
	}
	outcome := "ok"
	if !ok {
		outcome = "error"
	}
	m.GatewayOps.WithLabelValues(operation, outcome).Inc()
}
