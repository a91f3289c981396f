// Package grid models a rectangular terrain of weighted cells for pathfinding.
//
// What:
//
//   - Grid wraps a rectangular [][]float64 of traversal costs.
//   - A cell holds either a non-negative finite cost or the Blocked sentinel (+Inf).
//   - Neighbors enumerates the 8-connected walkable cells around a coordinate
//     in a fixed order: rows top to bottom (dy = -1, 0, 1), then columns left
//     to right (dx = -1, 0, 1).
//   - RegionLabels and Regions label 8-connected walkable areas, handy to explain why a goal
//     cannot be reached.
//
// A Grid is immutable once built: New deep-copies its input, so one Grid can
// be shared by any number of concurrent searches.
//
// Complexity:
//
//   - New:        O(W×H), Memory: O(W×H).
//   - Cost, IsBlocked, InBounds: O(1).
//   - Neighbors:  O(1) (at most 8 candidates).
//   - RegionLabels, Regions: O(W×H), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid:      input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrInvalidCost:    a cell is negative, NaN or -Inf.
//   - ErrOutOfBounds:    a coordinate lies outside [0,W)×[0,H).
package grid
