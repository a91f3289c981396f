package astar

import (
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/gridpath/grid"
)

// Search runs A* from start to goal on g and returns the finished Result.
//
// Returns:
//
//   - on success: a Result with State == StateSucceeded, the path and nil error.
//   - when the goal is unreachable: a Result with State == StateFailed, nil Path
//     and ErrNoPath (or ErrIterationLimit under WithMaxIterations).
//   - on invalid input: nil and ErrNilGrid, ErrOptionViolation,
//     grid.ErrOutOfBounds or ErrInvalidEndpoint; the search never starts.
//
// Every call opens an "astar.Search" span, logs astar_search_start and
// astar_search_complete events and reports SearchStats to the metrics sink.
func Search(g *grid.Grid, start, goal grid.Coordinate, opts ...Option) (*Result, error) {
	cfg := buildOptions(opts)
	began := time.Now()

	ctx, span := cfg.Tracer.Start(cfg.Ctx, "astar.Search",
		trace.WithAttributes(
			attribute.String("start", start.String()),
			attribute.String("goal", goal.String()),
		),
	)
	defer span.End()

	logger := cfg.Logger
	logger.DebugContext(ctx, "astar_search_start",
		slog.String("start", start.String()),
		slog.String("goal", goal.String()),
	)

	e, err := newEngine(g, start, goal, cfg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid search input")
		logger.WarnContext(ctx, "astar_search_rejected", slog.String("error", err.Error()))
		cfg.Metrics.ObserveSearch(SearchStats{Outcome: OutcomeRejected, Duration: time.Since(began)})
		return nil, err
	}

	e.Run()
	res := e.Result()
	duration := time.Since(began)

	stats := SearchStats{
		Iterations: res.Iterations,
		Expanded:   res.Expanded,
		PathLength: len(res.Path),
		Cost:       res.Cost,
		Duration:   duration,
	}
	span.SetAttributes(
		attribute.String("state", res.State.String()),
		attribute.Int("iterations", res.Iterations),
		attribute.Int("expanded", res.Expanded),
		attribute.Int("discovered", res.Discovered),
	)

	switch {
	case res.State == StateSucceeded:
		stats.Outcome = OutcomeSucceeded
		span.SetAttributes(
			attribute.Float64("cost", res.Cost),
			attribute.Int("path_length", len(res.Path)),
		)
		span.SetStatus(codes.Ok, "path found")
	case errors.Is(e.Err(), ErrIterationLimit):
		stats.Outcome = OutcomeLimit
		span.SetStatus(codes.Error, "iteration limit reached")
	default:
		// Exhausting the frontier is an expected outcome, not a span error.
		stats.Outcome = OutcomeNoPath
		span.SetStatus(codes.Ok, "no path")
	}
	cfg.Metrics.ObserveSearch(stats)

	logger.InfoContext(ctx, "astar_search_complete",
		slog.String("outcome", stats.Outcome),
		slog.Int("iterations", res.Iterations),
		slog.Int("expanded", res.Expanded),
		slog.Int("path_length", len(res.Path)),
		slog.Float64("cost", res.Cost),
		slog.Duration("duration", duration),
	)

	if res.State == StateFailed {
		return res, e.Err()
	}

	return res, nil
}
