package scenario

import "github.com/prometheus/client_golang/prometheus"

// Metrics records query batch activity.
type Metrics struct {
	queries  *prometheus.CounterVec
	duration *prometheus.HistogramVec
	cells    *prometheus.HistogramVec
}

// NewMetrics creates the query metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hexgrid",
			Name:      "queries_total",
			Help:      "Grid queries executed, by kind and result.",
		}, []string{"kind", "result"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "hexgrid",
			Name:      "query_duration_seconds",
			Help:      "Wall time of one grid query.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}, []string{"kind"}),
		cells: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "hexgrid",
			Name:      "query_result_cells",
			Help:      "Cells returned by one grid query.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}, []string{"kind"}),
	}
	reg.MustRegister(m.queries, m.duration, m.cells)
	return m
}

// result labels
const (
	resultFound = "found"
	resultEmpty = "empty"
	resultError = "error"
)

func (m *Metrics) observe(r Result) {
	if m == nil {
		return
	}
	kind := string(r.Query.Kind)

	outcome := resultFound
	switch {
	case r.Err != nil:
		outcome = resultError
	case len(r.Cells) == 0:
		outcome = resultEmpty
	}
	m.queries.WithLabelValues(kind, outcome).Inc()
	if r.Err != nil {
		return
	}
	m.duration.WithLabelValues(kind).Observe(r.Duration.Seconds())
	m.cells.WithLabelValues(kind).Observe(float64(len(r.Cells)))
}
