// Package mapfile decodes terrain maps for the grid package from YAML or JSON.
//
// A map document holds the rows of the grid and, optionally, default
// endpoints:
//
//	start: [3, 5]
//	goal:  [7, 2]
//	rows:
//	  - [9, 9, 9, 9, 9, Z, 9, 9, 9, 9]
//	  - [7, 9, Z, Z, Z, Z, Z, Z, Z, 9]
//
// A cell is a non-negative number or one of the blocked markers Z, X or #
// (case-insensitive; quote "#" in YAML). Walls are only spelled with those
// markers: infinite and NaN spellings such as "inf" are rejected.
// Coordinates are [x, y] pairs.
package mapfile
