package astar_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
)

var z = grid.Blocked

// referenceRows is the 10×10 terrain used throughout the tests; Z cells are walls.
func referenceRows() [][]float64 {
	return [][]float64{
		{9, 9, 9, 9, 9, z, 9, 9, 9, 9},
		{7, 9, z, z, z, z, z, z, z, 9},
		{6, 9, 9, 9, 8, z, 6, 2, z, 9},
		{3, 3, 3, 3, 3, z, 4, 5, z, 9},
		{7, 9, 7, 4, 9, 3, 3, 3, 3, 3},
		{9, 8, 8, 2, 9, z, 8, 8, 9, 9},
		{8, 7, z, z, z, z, 7, 5, 6, 6},
		{9, 7, 8, 7, 8, z, 5, 7, 7, 7},
		{9, 8, 7, 7, 9, z, 8, 8, 8, 8},
		{9, 9, 9, 9, 9, z, 7, 6, 8, 8},
	}
}

func mustGrid(t testing.TB, rows [][]float64) *grid.Grid {
	t.Helper()
	g, err := grid.New(rows)
	require.NoError(t, err)

	return g
}

// randomGrid builds a w×h grid with integer costs in [0,9] and roughly
// wallPct percent blocked cells, deterministic for a given seed.
func randomGrid(t testing.TB, w, h, wallPct int, seed int64) *grid.Grid {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	rows := make([][]float64, h)
	for y := range rows {
		rows[y] = make([]float64, w)
		for x := range rows[y] {
			if r.Intn(100) < wallPct {
				rows[y][x] = grid.Blocked
				continue
			}
			rows[y][x] = float64(r.Intn(10))
		}
	}

	return mustGrid(t, rows)
}

// walkableCells lists every non-blocked coordinate in row-major order.
func walkableCells(g *grid.Grid) []grid.Coordinate {
	var out []grid.Coordinate
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := grid.Coordinate{X: x, Y: y}
			if blocked, _ := g.IsBlocked(c); !blocked {
				out = append(out, c)
			}
		}
	}

	return out
}

// positions extracts the coordinates of a step sequence.
func positions(steps []astar.Step) []grid.Coordinate {
	out := make([]grid.Coordinate, len(steps))
	for i, s := range steps {
		out[i] = s.Position
	}

	return out
}
