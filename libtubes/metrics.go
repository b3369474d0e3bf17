package libtubes

import (
	"github.com/fine-structures/fliptubes/gotubes"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts search activity.  A nil *Metrics is valid and records nothing.
type Metrics struct {
	Trials            *prometheus.CounterVec
	Graphs            *prometheus.CounterVec
	FlipGraphVertices prometheus.Histogram
}

// NewMetrics creates search metrics and registers them with reg (if non-nil).
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Trials: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fliptubes_trials_total",
			Help: "Randomized search trials by mode and result (found, stuck, skipped)",
		}, []string{"mode", "result"}),
		Graphs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fliptubes_graphs_total",
			Help: "Input graphs by search outcome",
		}, []string{"outcome"}),
		FlipGraphVertices: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "fliptubes_flipgraph_vertices",
			Help:    "Number of maximal tubings per searched flip graph",
			Buckets: prometheus.ExponentialBuckets(2, 4, 10),
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Trials, m.Graphs, m.FlipGraphVertices)
	}
	return m
}

func (m *Metrics) observeTrial(mode gotubes.Mode, result string) {
	if m == nil {
		return
	}
	m.Trials.WithLabelValues(mode.String(), result).Inc()
}

func (m *Metrics) observeSkipped(mode gotubes.Mode, count int) {
	if m == nil || count <= 0 {
		return
	}
	m.Trials.WithLabelValues(mode.String(), "skipped").Add(float64(count))
}

func (m *Metrics) observeGraph(outcome string) {
	if m == nil {
		return
	}
	m.Graphs.WithLabelValues(outcome).Inc()
}

func (m *Metrics) observeFlipGraph(fg *FlipGraph) {
	if m == nil {
		return
	}
	m.FlipGraphVertices.Observe(float64(fg.VertexCount()))
}
