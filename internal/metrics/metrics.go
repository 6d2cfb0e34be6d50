package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are the grouping counters exported at /metrics.
type Metrics struct {
	Requests    *prometheus.CounterVec
	Fallbacks   *prometheus.CounterVec
	Ingredients prometheus.Histogram
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ingredient_groups_requests_total",
			Help: "Grouping requests by site and algorithm.",
		}, []string{"site", "algorithm"}),
		Fallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ingredient_groups_fallbacks_total",
			Help: "Grouping requests answered with an ungrouped list.",
		}, []string{"site", "reason"}),
		Ingredients: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "ingredient_groups_ingredients",
			Help:    "Ingredients returned per grouping request.",
			Buckets: []float64{1, 5, 10, 20, 40, 80},
		}),
	}
	reg.MustRegister(m.Requests, m.Fallbacks, m.Ingredients)
	return m
}
