package metrics_test

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/metrics"
)

func TestRecorder_ObserveSearch(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := metrics.NewRecorder(reg)

	r.ObserveSearch(astar.SearchStats{Outcome: astar.OutcomeSucceeded, Iterations: 13, PathLength: 6, Duration: time.Millisecond})
	r.ObserveSearch(astar.SearchStats{Outcome: astar.OutcomeNoPath, Iterations: 1, Duration: time.Microsecond})
	r.ObserveSearch(astar.SearchStats{Outcome: astar.OutcomeRejected})

	expected := `
# HELP gridpath_search_total Total searches by outcome
# TYPE gridpath_search_total counter
gridpath_search_total{outcome="no_path"} 1
gridpath_search_total{outcome="rejected"} 1
gridpath_search_total{outcome="succeeded"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "gridpath_search_total"))

	families, err := reg.Gather()
	require.NoError(t, err)
	counts := map[string]uint64{}
	for _, mf := range families {
		if h := mf.GetMetric()[0].GetHistogram(); h != nil {
			counts[mf.GetName()] = h.GetSampleCount()
		}
	}
	assert.Equal(t, uint64(2), counts["gridpath_search_duration_seconds"], "rejected searches are not timed")
	assert.Equal(t, uint64(2), counts["gridpath_search_iterations"])
	assert.Equal(t, uint64(1), counts["gridpath_search_path_length"], "only successful searches have a path")
}

func TestRecorder_WithSearch(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := metrics.NewRecorder(reg)
	g, err := grid.New([][]float64{{1, 1, 1}, {1, grid.Blocked, 1}})
	require.NoError(t, err)

	_, err = astar.Search(g, grid.Coordinate{}, grid.Coordinate{X: 2, Y: 1}, astar.WithMetrics(r))
	require.NoError(t, err)
	_, err = astar.Search(g, grid.Coordinate{}, grid.Coordinate{X: 1, Y: 1}, astar.WithMetrics(r))
	require.ErrorIs(t, err, astar.ErrInvalidEndpoint)

	n, err := testutil.GatherAndCount(reg, "gridpath_search_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestNewRecorder_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.NewRecorder(reg)

	assert.Panics(t, func() { metrics.NewRecorder(reg) })
}
