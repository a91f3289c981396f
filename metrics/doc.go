// Package metrics exports search statistics to Prometheus.
//
// A Recorder implements astar.MetricsSink; pass it with astar.WithMetrics.
// All collectors register on the Registerer given to NewRecorder, so a test
// can use a fresh prometheus.NewRegistry while a server uses the default one.
//
// Exported series:
//
//	gridpath_search_total{outcome}       counter
//	gridpath_search_duration_seconds     histogram
//	gridpath_search_iterations           histogram
//	gridpath_search_path_length          histogram (successful searches only)
package metrics
