package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/gridpath/astar"
)

// Recorder turns astar.SearchStats into Prometheus series.
type Recorder struct {
	total      *prometheus.CounterVec
	duration   prometheus.Histogram
	iterations prometheus.Histogram
	pathLength prometheus.Histogram
}

var _ astar.MetricsSink = (*Recorder)(nil)

// NewRecorder registers the search collectors on reg. It panics if they are
// already registered there, as promauto does.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)

	return &Recorder{
		// Labels: "succeeded", "no_path", "iteration_limit", "rejected"
		total: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gridpath_search_total",
			Help: "Total searches by outcome",
		}, []string{"outcome"}),
		duration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "gridpath_search_duration_seconds",
			Help:    "Search duration",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
		}),
		iterations: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "gridpath_search_iterations",
			Help:    "Iterations per search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),
		pathLength: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "gridpath_search_path_length",
			Help:    "Cells on the returned path",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}),
	}
}

// ObserveSearch implements astar.MetricsSink.
func (r *Recorder) ObserveSearch(s astar.SearchStats) {
	r.total.WithLabelValues(s.Outcome).Inc()
	if s.Outcome == astar.OutcomeRejected {
		return
	}
	r.duration.Observe(s.Duration.Seconds())
	r.iterations.Observe(float64(s.Iterations))
	if s.Outcome == astar.OutcomeSucceeded {
		r.pathLength.Observe(float64(s.PathLength))
	}
}
