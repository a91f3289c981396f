package grid

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// New constructs a Grid from a non-empty, rectangular 2D slice indexed [y][x].
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrInvalidCost if a cell is negative, NaN or -Inf.
// Algorithmic complexity: O(W×H) time and memory.
func New(rows [][]float64) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	cells := make([]float64, 0, w*h)
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		for x, v := range row {
			if math.IsNaN(v) || v < 0 {
				return nil, fmt.Errorf("%w: cell (%d, %d) = %v", ErrInvalidCost, x, y, v)
			}
			cells = append(cells, v)
		}
	}

	return &Grid{width: w, height: h, cells: cells}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether c lies within [0,Width)×[0,Height).
// Complexity: O(1).
func (g *Grid) InBounds(c Coordinate) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// Cost returns the traversal cost of entering c.
// A blocked cell reports Blocked. Returns ErrOutOfBounds outside the grid.
func (g *Grid) Cost(c Coordinate) (float64, error) {
	if !g.InBounds(c) {
		return 0, g.outOfBounds(c)
	}

	return g.cells[g.Index(c)], nil
}

// IsBlocked reports whether c holds the Blocked sentinel.
// Returns ErrOutOfBounds outside the grid.
func (g *Grid) IsBlocked(c Coordinate) (bool, error) {
	if !g.InBounds(c) {
		return false, g.outOfBounds(c)
	}

	return math.IsInf(g.cells[g.Index(c)], 1), nil
}

// Neighbors returns the in-bounds, non-blocked 8-neighbors of c in
// enumeration order (dy = -1..1, then dx = -1..1).
// Returns ErrOutOfBounds if c itself lies outside the grid.
func (g *Grid) Neighbors(c Coordinate) ([]Coordinate, error) {
	if !g.InBounds(c) {
		return nil, g.outOfBounds(c)
	}

	return g.AppendNeighbors(make([]Coordinate, 0, len(neighborOffsets)), c), nil
}

// AppendNeighbors appends the walkable neighbors of an in-bounds c to dst and
// returns the extended slice. It lets hot loops reuse one buffer.
// The caller must ensure c is in bounds.
func (g *Grid) AppendNeighbors(dst []Coordinate, c Coordinate) []Coordinate {
	for _, d := range neighborOffsets {
		n := Coordinate{X: c.X + d[0], Y: c.Y + d[1]}
		if !g.InBounds(n) || math.IsInf(g.cells[g.Index(n)], 1) {
			continue
		}
		dst = append(dst, n)
	}

	return dst
}

// Row returns a copy of row y, or nil if y is out of range.
func (g *Grid) Row(y int) []float64 {
	if y < 0 || y >= g.height {
		return nil
	}
	row := make([]float64, g.width)
	copy(row, g.cells[y*g.width:(y+1)*g.width])

	return row
}

// Index maps an in-bounds c to its row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(c Coordinate) int {
	return c.Y*g.width + c.X
}

// Coordinate converts a row-major index back to a Coordinate.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coordinate {
	return Coordinate{X: idx % g.width, Y: idx / g.width}
}

// String renders the grid one row per line, blocked cells as "Z".
func (g *Grid) String() string {
	var sb strings.Builder
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			v := g.cells[y*g.width+x]
			if math.IsInf(v, 1) {
				sb.WriteByte('Z')
				continue
			}
			sb.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func (g *Grid) outOfBounds(c Coordinate) error {
	return fmt.Errorf("%w: %s outside %dx%d", ErrOutOfBounds, c, g.width, g.height)
}
