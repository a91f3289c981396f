// Package astar implements best-first A* search over a weighted grid.Grid.
//
// The engine expands, on every iteration, the frontier node with the lowest
// f = g + h, where g is the accumulated cost from the start and h is the
// heuristic estimate to the goal. Entering a cell costs that cell's own
// value, whatever the direction of the move: a diagonal step costs the same
// as an orthogonal one.
//
// Selection order:
//
//   - minimum f;
//   - on equal f, minimum h;
//   - on equal f and h, the node discovered first.
//
// A coordinate is inserted into the frontier at most once and an open node is
// never relaxed. Combined with the Euclidean default heuristic, which is not
// admissible once cell costs exceed 1 per step, this makes the search a
// best-effort informed search: it always returns a valid path when one
// exists, but not necessarily the cheapest one.
//
// Complexity:
//
//   - Time:  O(N log N) where N = W×H (each cell is discovered at most once).
//   - Space: O(N) for the node arena, per-cell index and the heap.
//
// Entry points:
//
//   - Search: validate, run to completion and report a *Result.
//   - Engine: drive the same state machine one Step at a time.
//
// Options:
//
//   - WithHeuristic:     replace the Euclidean estimate.
//   - WithObserver:      receive a Snapshot of the frontier and visited set per iteration.
//   - WithMaxIterations: stop after a fixed number of selections (ErrIterationLimit).
//   - WithLogger, WithTracer, WithContext, WithMetrics: structured logs, an
//     OpenTelemetry span and metrics for Search.
//
// Errors:
//
//   - ErrNilGrid:          the grid pointer is nil.
//   - grid.ErrOutOfBounds: start or goal lies outside the grid (wrapped).
//   - ErrInvalidEndpoint:  start or goal is a blocked cell; the search never starts.
//   - ErrNoPath:           the frontier ran dry; an expected outcome, not a fault.
//   - ErrIterationLimit:   WithMaxIterations budget exhausted.
//   - ErrOptionViolation:  an option received an invalid value.
//
// An Engine is single-use and not safe for concurrent use. A *grid.Grid is
// read-only and may be shared by any number of concurrent searches.
package astar
