package astar

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors returned by the search.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed in.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrInvalidEndpoint indicates that start or goal sits on a blocked cell.
	ErrInvalidEndpoint = errors.New("astar: endpoint is a blocked cell")

	// ErrNoPath indicates that the frontier was exhausted without reaching the goal.
	ErrNoPath = errors.New("astar: no path exists")

	// ErrIterationLimit indicates that the MaxIterations budget ran out
	// before the goal was selected.
	ErrIterationLimit = errors.New("astar: iteration limit reached")

	// ErrOptionViolation indicates that an invalid Option was supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// TracerName is the instrumentation scope used by the default tracer.
const TracerName = "github.com/katalvlaran/gridpath/astar"

// State is the phase of an Engine.
type State int

const (
	// StateRunning means more iterations are needed.
	StateRunning State = iota
	// StateSucceeded means the goal was selected; a path is available.
	StateSucceeded
	// StateFailed means the search ended without reaching the goal.
	StateFailed
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Node is a search-time record stored in the engine arena.
// Parent is the arena index of the predecessor, -1 for the start node.
// Nodes are never modified once created.
type Node struct {
	Position grid.Coordinate
	Parent   int32
	G, H, F  float64
}

// Step is the caller-facing view of a node: its position and scores.
type Step struct {
	Position grid.Coordinate `json:"position"`
	G        float64         `json:"g"`
	H        float64         `json:"h"`
	F        float64         `json:"f"`
}

// String renders the step as "(x, y) f = … g = … h = …" with four decimals.
func (s Step) String() string {
	return fmt.Sprintf("%s f = %.4f g = %.4f h = %.4f", s.Position, s.F, s.G, s.H)
}

// Result is the outcome of a finished search.
//
//   - Path:       start..goal inclusive on success, nil on failure.
//   - Cost:       g of the goal node (0 on failure).
//   - Iterations: number of frontier selections performed.
//   - Expanded:   number of nodes moved to the visited set.
//   - Discovered: number of nodes ever created.
//   - Selected:   the node chosen on each iteration, in order.
type Result struct {
	State      State
	Path       []Step
	Cost       float64
	Iterations int
	Expanded   int
	Discovered int
	Selected   []Step
}

// Snapshot is the per-iteration view handed to an Observer.
// Open lists frontier nodes in insertion order (Current included);
// Closed lists visited nodes in expansion order.
type Snapshot struct {
	Iteration int
	Current   Step
	Open      []Step
	Closed    []Step
}

// Observer receives a Snapshot each time the engine selects a node.
// Snapshots are freshly allocated and may be retained.
type Observer func(Snapshot)

// SearchStats summarises one Search call for a MetricsSink.
type SearchStats struct {
	Outcome    string
	Iterations int
	Expanded   int
	PathLength int
	Cost       float64
	Duration   time.Duration
}

// Outcome labels reported in SearchStats.
const (
	OutcomeSucceeded = "succeeded"
	OutcomeNoPath    = "no_path"
	OutcomeLimit     = "iteration_limit"
	OutcomeRejected  = "rejected"
)

// MetricsSink consumes SearchStats after every Search.
type MetricsSink interface {
	ObserveSearch(SearchStats)
}

type nopSink struct{}

func (nopSink) ObserveSearch(SearchStats) {}

// Option configures search behavior via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation
// when the engine is created.
type Option func(*Options)

// Options holds parameters and collaborators for a search.
type Options struct {
	// Heuristic estimates the remaining cost; Euclidean by default.
	Heuristic Heuristic

	// Observer, if non-nil, receives a Snapshot per iteration.
	Observer Observer

	// MaxIterations, if > 0, caps the number of selections.
	// 0 disables the cap.
	MaxIterations int

	// Ctx is the parent of the search span and is passed to the logger.
	// It is never used for cancellation.
	Ctx context.Context

	// Logger receives structured search events. Discarded by default.
	Logger *slog.Logger

	// Tracer starts the "astar.Search" span.
	Tracer trace.Tracer

	// Metrics receives SearchStats after every Search.
	Metrics MetricsSink

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with defaults:
//   - Euclidean heuristic, no observer, no iteration cap
//   - context.Background()
//   - a logger writing to io.Discard
//   - the global OpenTelemetry tracer (no-op until a provider is installed)
//   - a metrics sink that drops everything
func DefaultOptions() Options {
	return Options{
		Heuristic:     Euclidean,
		Observer:      nil,
		MaxIterations: 0,
		Ctx:           context.Background(),
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		Tracer:        otel.Tracer(TracerName),
		Metrics:       nopSink{},
	}
}

// WithHeuristic replaces the default Euclidean estimate.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithObserver registers a per-iteration observer.
func WithObserver(fn Observer) Option {
	return func(o *Options) {
		o.Observer = fn
	}
}

// WithMaxIterations caps the number of selections.
//
//	n > 0: stop with ErrIterationLimit after n selections
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxIterations cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithContext sets the parent context for tracing and logging.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithTracer sets the OpenTelemetry tracer used by Search.
func WithTracer(t trace.Tracer) Option {
	return func(o *Options) {
		if t != nil {
			o.Tracer = t
		}
	}
}

// WithMetrics sets the sink receiving SearchStats.
func WithMetrics(m MetricsSink) Option {
	return func(o *Options) {
		if m != nil {
			o.Metrics = m
		}
	}
}

func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
