// Package httpapi serves grid searches over HTTP.
//
// Routes:
//
//	POST /routes   {"rows": [[...]], "start": [x, y], "goal": [x, y], "heuristic": "octile"}
//	GET  /healthz
//	GET  /metrics  (when a metrics handler is supplied)
//
// Rows use the mapfile cell syntax: numbers, or "Z"/"X"/"#" for walls.
// A found path answers 200 with a RouteResult. An unreachable goal answers
// 404 with the search statistics. Blocked or out-of-range endpoints, an
// exhausted iteration budget and a path cost past the float64 range answer
// 422. Malformed bodies and invalid grids answer 400; bodies larger than
// DefaultMaxBodyBytes (or WithMaxBodyBytes) answer 413.
package httpapi
