package astar

import (
	"fmt"
	"math"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/gridpath/grid"
)

// Heuristic returns the estimated remaining cost from a to b.
// It must be non-negative and deterministic.
type Heuristic func(a, b grid.Coordinate) float64

// Euclidean is the straight-line distance sqrt(dx² + dy²). It is the default.
// It is not admissible once cell costs exceed 1 per step.
func Euclidean(a, b grid.Coordinate) float64 {
	return planar.Distance(point(a), point(b))
}

// Manhattan is |dx| + |dy|.
func Manhattan(a, b grid.Coordinate) float64 {
	dx, dy := delta(a, b)
	return dx + dy
}

// Chebyshev is max(|dx|, |dy|): the number of king moves between a and b.
func Chebyshev(a, b grid.Coordinate) float64 {
	dx, dy := delta(a, b)
	return math.Max(dx, dy)
}

// Octile weighs diagonal moves by √2: max + (√2-1)·min.
func Octile(a, b grid.Coordinate) float64 {
	dx, dy := delta(a, b)
	return math.Max(dx, dy) + (math.Sqrt2-1)*math.Min(dx, dy)
}

func point(c grid.Coordinate) orb.Point {
	return orb.Point{float64(c.X), float64(c.Y)}
}

func delta(a, b grid.Coordinate) (dx, dy float64) {
	return math.Abs(float64(a.X - b.X)), math.Abs(float64(a.Y - b.Y))
}

// Heuristics maps the lower-case names accepted by the command-line tool and
// the HTTP API to their functions.
var Heuristics = map[string]Heuristic{
	"euclidean": Euclidean,
	"manhattan": Manhattan,
	"chebyshev": Chebyshev,
	"octile":    Octile,
}

// HeuristicByName looks up name in Heuristics. An empty name selects Euclidean.
func HeuristicByName(name string) (Heuristic, error) {
	if name == "" {
		return Euclidean, nil
	}
	h, ok := Heuristics[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: unknown heuristic %q", ErrOptionViolation, name)
	}

	return h, nil
}
