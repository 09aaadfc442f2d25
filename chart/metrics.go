package chart

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics collects parse statistics as Prometheus metrics.
type Metrics struct {
	Parses       prometheus.Counter
	Combinations prometheus.Counter
	Edges        prometheus.Counter
	Tokens       prometheus.Histogram
	Results      prometheus.Histogram
	Duration     prometheus.Histogram
}

// NewMetrics creates parse metrics and registers them with reg, if reg is
// not nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Parses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ccg",
			Subsystem: "chart",
			Name:      "parses_total",
			Help:      "Number of charts built.",
		}),
		Combinations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ccg",
			Subsystem: "chart",
			Name:      "combinations_total",
			Help:      "Number of category pairs handed to the grammar.",
		}),
		Edges: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ccg",
			Subsystem: "chart",
			Name:      "edges_total",
			Help:      "Number of chart edges created, terminals included.",
		}),
		Tokens: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "ccg",
			Subsystem: "chart",
			Name:      "tokens",
			Help:      "Input length of parses.",
			Buckets:   prometheus.LinearBuckets(1, 4, 8),
		}),
		Results: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "ccg",
			Subsystem: "chart",
			Name:      "results",
			Help:      "Number of categories for the complete input.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
		}),
		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "ccg",
			Subsystem: "chart",
			Name:      "duration_seconds",
			Help:      "Time to build a chart.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Parses, m.Combinations, m.Edges, m.Tokens, m.Results, m.Duration)
	}
	return m
}

func (m *Metrics) observe(tokens int, combinations int64, edges, results int, d time.Duration) {
	m.Parses.Inc()
	m.Combinations.Add(float64(combinations))
	m.Edges.Add(float64(edges))
	m.Tokens.Observe(float64(tokens))
	m.Results.Observe(float64(results))
	m.Duration.Observe(d.Seconds())
}
