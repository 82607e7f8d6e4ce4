package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the receipt module. All methods are
// nil-safe so tests can pass a nil *Metrics without touching the default
// registry.
type Metrics struct {
	// Receipts accepted and stored
	ReceiptsProcessed prometheus.Counter

	// Submissions rejected by validation
	ReceiptsRejected prometheus.Counter

	// Points queries by outcome
	PointsQueries *prometheus.CounterVec
}

// New creates a new Metrics instance with all receipt module metrics registered.
func New() *Metrics {
	return &Metrics{
		ReceiptsProcessed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tally_receipts_processed_total",
			Help: "Total receipts that passed validation and were stored",
		}),

		ReceiptsRejected: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tally_receipts_rejected_total",
			Help: "Total receipt submissions rejected by validation",
		}),

		PointsQueries: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "tally_points_queries_total",
			Help: "Total points queries by outcome",
		}, []string{"outcome"}), // outcome: "hit", "miss"
	}
}

// IncrementProcessed records a stored receipt.
func (m *Metrics) IncrementProcessed() {
	if m != nil {
		m.ReceiptsProcessed.Inc()
	}
}

// IncrementRejected records a validation rejection.
func (m *Metrics) IncrementRejected() {
	if m != nil {
		m.ReceiptsRejected.Inc()
	}
}

// IncrementPointsQuery records a points query outcome.
func (m *Metrics) IncrementPointsQuery(outcome string) {
	if m != nil {
		m.PointsQueries.WithLabelValues(outcome).Inc()
	}
}
