package grid

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrInvalidCost indicates a cell that is neither a non-negative cost nor Blocked.
	ErrInvalidCost = errors.New("grid: cell must hold a non-negative cost or Blocked")
	// ErrOutOfBounds indicates a coordinate outside the grid dimensions.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)

// Blocked marks an impassable cell. It is distinct from every valid cost.
var Blocked = math.Inf(1)

// Coordinate addresses a cell: X is the column, Y is the row.
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// String renders the coordinate as "(x, y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// neighborOffsets lists (dx, dy) pairs in enumeration order: dy outer, dx inner.
// Changing this order changes which of several equal-cost paths a search returns.
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Grid is an immutable rectangular terrain.
// cells holds values in row-major order: cells[y*width+x].
type Grid struct {
	width, height int
	cells         []float64
}
