package astar

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Engine holds the mutable state of a single A* run.
// Build one with NewEngine, then call Step until it leaves StateRunning,
// or call Run.
type Engine struct {
	grid  *grid.Grid
	start grid.Coordinate
	goal  grid.Coordinate
	opts  Options

	nodes    []Node  // arena in discovery order; index doubles as insertion sequence
	cell     []int32 // row-major cell → arena index, -1 while undiscovered
	closed   []bool  // arena index → expanded
	order    []int32 // arena indices in expansion order
	open     frontier
	selected []int32 // arena index chosen on each iteration
	buf      []grid.Coordinate

	state   State
	goalIdx int32
	err     error
}

// NewEngine validates the inputs and seeds the frontier with the start node.
//
// Validation order:
//  1. options (ErrOptionViolation);
//  2. g non-nil (ErrNilGrid);
//  3. start and goal in bounds (wrapped grid.ErrOutOfBounds);
//  4. start and goal walkable (ErrInvalidEndpoint).
func NewEngine(g *grid.Grid, start, goal grid.Coordinate, opts ...Option) (*Engine, error) {
	return newEngine(g, start, goal, buildOptions(opts))
}

func newEngine(g *grid.Grid, start, goal grid.Coordinate, cfg Options) (*Engine, error) {
	if cfg.err != nil {
		return nil, cfg.err
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	if err := checkEndpoint(g, "start", start); err != nil {
		return nil, err
	}
	if err := checkEndpoint(g, "goal", goal); err != nil {
		return nil, err
	}

	n := g.Width() * g.Height()
	e := &Engine{
		grid:    g,
		start:   start,
		goal:    goal,
		opts:    cfg,
		cell:    make([]int32, n),
		buf:     make([]grid.Coordinate, 0, 8),
		state:   StateRunning,
		goalIdx: -1,
	}
	for i := range e.cell {
		e.cell[i] = -1
	}
	e.open.arena = &e.nodes

	h := cfg.Heuristic(start, goal)
	e.discover(start, -1, 0, h)

	return e, nil
}

func checkEndpoint(g *grid.Grid, name string, c grid.Coordinate) error {
	blocked, err := g.IsBlocked(c)
	if err != nil {
		return fmt.Errorf("astar: %s: %w", name, err)
	}
	if blocked {
		return fmt.Errorf("%w: %s %s", ErrInvalidEndpoint, name, c)
	}

	return nil
}

// discover appends a node to the arena and pushes it onto the frontier.
func (e *Engine) discover(pos grid.Coordinate, parent int32, g, h float64) {
	idx := int32(len(e.nodes))
	e.nodes = append(e.nodes, Node{Position: pos, Parent: parent, G: g, H: h, F: g + h})
	e.closed = append(e.closed, false)
	e.cell[e.grid.Index(pos)] = idx
	e.open.push(idx)
}

// State reports the current phase.
func (e *Engine) State() State { return e.state }

// Err returns ErrNoPath or ErrIterationLimit once the engine has failed, nil otherwise.
func (e *Engine) Err() error { return e.err }

// Step performs one iteration of the search and returns the resulting state.
// Calling Step after the engine has finished is a no-op.
//
//  1. Empty frontier → StateFailed (ErrNoPath).
//  2. Select the best frontier node and notify the observer.
//  3. Selected node is the goal → StateSucceeded.
//  4. Move it from the frontier to the visited set.
//  5. Discover every neighbor that is neither open nor visited.
func (e *Engine) Step() State {
	if e.state != StateRunning {
		return e.state
	}
	if e.open.Len() == 0 {
		e.fail(ErrNoPath)
		return e.state
	}
	if limit := e.opts.MaxIterations; limit > 0 && len(e.selected) >= limit {
		e.fail(fmt.Errorf("%w: %d iterations", ErrIterationLimit, limit))
		return e.state
	}

	cur := e.open.peek()
	e.selected = append(e.selected, cur)
	if e.opts.Observer != nil {
		e.opts.Observer(e.snapshot(cur))
	}

	current := e.nodes[cur]
	if current.Position == e.goal {
		e.state = StateSucceeded
		e.goalIdx = cur
		return e.state
	}

	e.open.pop()
	e.closed[cur] = true
	e.order = append(e.order, cur)

	e.buf = e.grid.AppendNeighbors(e.buf[:0], current.Position)
	for _, nb := range e.buf {
		ci := e.grid.Index(nb)
		if e.cell[ci] >= 0 {
			continue // already open or visited
		}
		cost, _ := e.grid.Cost(nb)
		e.discover(nb, cur, current.G+cost, e.opts.Heuristic(nb, e.goal))
	}

	return e.state
}

// Run steps until the engine leaves StateRunning.
func (e *Engine) Run() State {
	for e.state == StateRunning {
		e.Step()
	}

	return e.state
}

func (e *Engine) fail(err error) {
	e.state = StateFailed
	e.err = err
}

// Path returns start..goal inclusive once the engine succeeded, nil otherwise.
func (e *Engine) Path() []Step {
	if e.state != StateSucceeded {
		return nil
	}

	return e.reconstruct(e.goalIdx)
}

// Result summarises the run. It may be called in any state.
func (e *Engine) Result() *Result {
	res := &Result{
		State:      e.state,
		Path:       e.Path(),
		Iterations: len(e.selected),
		Expanded:   len(e.order),
		Discovered: len(e.nodes),
		Selected:   make([]Step, len(e.selected)),
	}
	for i, idx := range e.selected {
		res.Selected[i] = e.nodes[idx].step()
	}
	if e.state == StateSucceeded {
		res.Cost = e.nodes[e.goalIdx].G
	}

	return res
}

// snapshot copies the frontier (insertion order) and visited set (expansion order).
func (e *Engine) snapshot(cur int32) Snapshot {
	s := Snapshot{
		Iteration: len(e.selected) - 1,
		Current:   e.nodes[cur].step(),
		Open:      make([]Step, 0, e.open.Len()),
		Closed:    make([]Step, 0, len(e.order)),
	}
	for i := range e.nodes {
		if !e.closed[i] {
			s.Open = append(s.Open, e.nodes[i].step())
		}
	}
	for _, idx := range e.order {
		s.Closed = append(s.Closed, e.nodes[idx].step())
	}

	return s
}

func (n Node) step() Step {
	return Step{Position: n.Position, G: n.G, H: n.H, F: n.F}
}
