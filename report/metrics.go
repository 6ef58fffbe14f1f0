package report

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/mstrepair/core"
)

const metricsNamespace = "mstrepair"

// Metrics counts repair-cycle events with prometheus collectors.
type Metrics struct {
	builds     prometheus.Counter
	removals   prometheus.Counter
	considered prometheus.Counter
	rejected   *prometheus.CounterVec
	repairs    *prometheus.CounterVec
	weight     prometheus.Gauge
}

var _ Reporter = (*Metrics)(nil)

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		builds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "tree_builds_total",
			Help:      "Number of full MST rebuilds.",
		}),
		removals: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "edge_removals_total",
			Help:      "Number of edges cut out of the tree.",
		}),
		considered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "candidates_considered_total",
			Help:      "Number of crossing edges examined during replacement search.",
		}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "candidates_rejected_total",
			Help:      "Number of scanned edges rejected during replacement search, by reason.",
		}, []string{"reason"}),
		repairs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "replacement_searches_total",
			Help:      "Number of replacement searches, by outcome.",
		}, []string{"outcome"}),
		weight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "tree_weight",
			Help:      "Total weight of the current tree after the last build or repair.",
		}),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.builds, m.removals, m.considered, m.rejected, m.repairs, m.weight} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Builds exposes the rebuild counter.
func (m *Metrics) Builds() prometheus.Counter { return m.builds }

// Removals exposes the removal counter.
func (m *Metrics) Removals() prometheus.Counter { return m.removals }

// Considered exposes the crossing-candidate counter.
func (m *Metrics) Considered() prometheus.Counter { return m.considered }

// Rejected exposes the rejection counter for reason.
func (m *Metrics) Rejected(reason Reason) prometheus.Counter {
	return m.rejected.WithLabelValues(string(reason))
}

// Searches exposes the search counter for found (true) or not found (false).
func (m *Metrics) Searches(found bool) prometheus.Counter {
	return m.repairs.WithLabelValues(outcome(found))
}

// Weight exposes the tree-weight gauge.
func (m *Metrics) Weight() prometheus.Gauge { return m.weight }

func outcome(found bool) string {
	if found {
		return "found"
	}

	return "not_found"
}

func (m *Metrics) TreeBuilt(_ []core.Edge, weight int64) {
	m.builds.Inc()
	m.weight.Set(float64(weight))
}

func (m *Metrics) EdgeRemoved(_ int, e core.Edge) {
	m.removals.Inc()
	m.weight.Sub(float64(e.Weight))
}

func (m *Metrics) VertexVisited(int) {}

func (m *Metrics) ComponentsFound(core.Partition) {}

func (m *Metrics) CandidateRejected(_ core.Edge, reason Reason) {
	m.rejected.WithLabelValues(string(reason)).Inc()
}

func (m *Metrics) CandidateConsidered(core.Edge) { m.considered.Inc() }

func (m *Metrics) BestUpdated(core.Edge) {}

func (m *Metrics) ReplacementChosen(_ core.Edge, found bool) {
	m.repairs.WithLabelValues(outcome(found)).Inc()
}

func (m *Metrics) EdgeAdded(_ core.Edge, weight int64) {
	m.weight.Set(float64(weight))
}
