// Package gridpath finds lowest-cost routes across weighted 2D grids with A*.
//
// 🚀 What is gridpath?
//
//	A small, deterministic pathfinding toolkit built around one search:
//		• Grids: rectangular terrains of per-cell entry costs and walls
//		• A*: 8-connected search with pluggable heuristics and an iteration budget
//		• Traces: per-iteration snapshots of the open and closed lists
//		• Map files: YAML/JSON terrains with optional default endpoints
//		• Observability: slog events, OpenTelemetry spans, Prometheus metrics
//		• Drivers: the gridpath CLI and the gridpathd HTTP service
//
// ✨ Why choose gridpath?
//
//   - Deterministic: identical inputs give identical paths and traces
//   - Inspectable: step the engine one iteration at a time or observe every snapshot
//   - Shareable: a *grid.Grid is immutable and safe across concurrent searches
//
// Packages:
//
//	grid/     Grid, Coordinate, 8-neighborhood enumeration and connected regions
//	astar/    Engine, Search, heuristics, snapshots and path reconstruction
//	mapfile/  YAML/JSON map decoding and the bundled reference terrain
//	metrics/  Prometheus recorder for search statistics
//	httpapi/  gorilla/mux JSON API around astar.Search
//	cmd/      gridpath (CLI) and gridpathd (HTTP server)
//
// Quick ASCII example (Z is a wall, digits are entry costs):
//
//	S 1 1
//	1 Z 1
//	1 1 G
//
// Moving into a cell costs that cell's value whatever the direction, so the
// route S → (1,0) → (2,1) → G costs 1 + 1 + 1 = 3.
package gridpath
