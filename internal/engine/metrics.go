package engine

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are the solver's prometheus collectors.
type Metrics struct {
	Nodes     prometheus.Counter
	Hits      prometheus.Counter
	Positions prometheus.Gauge
	SolveTime prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg when reg is
// not nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Nodes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tictactoe",
			Name:      "search_nodes_total",
			Help:      "Search calls, table hits included.",
		}),
		Hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tictactoe",
			Name:      "table_hits_total",
			Help:      "Search calls answered from the transposition table.",
		}),
		Positions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "tictactoe",
			Name:      "table_positions",
			Help:      "Solved positions held in the transposition table.",
		}),
		SolveTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "tictactoe",
			Name:      "solve_seconds",
			Help:      "Wall time of a full solve.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Nodes, m.Hits, m.Positions, m.SolveTime)
	}
	return m
}

func (e *Engine) observe(res SolveResult) {
	if e.metrics == nil {
		return
	}
	e.metrics.Nodes.Add(float64(res.Nodes))
	e.metrics.Hits.Add(float64(res.Hits))
	e.metrics.Positions.Set(float64(res.Positions))
	e.metrics.SolveTime.Observe(res.TimeUsed.Seconds())
}
