package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/mapfile"
)

// Service runs the searches behind the HTTP routes. It holds no per-request
// state and is safe for concurrent use.
type Service struct {
	logger        *slog.Logger
	metrics       astar.MetricsSink
	maxIterations int
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets the logger handed to every search.
func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics sets the sink every search reports to.
func WithMetrics(m astar.MetricsSink) ServiceOption {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithMaxIterations caps each search; 0 means unlimited.
func WithMaxIterations(n int) ServiceOption {
	return func(s *Service) {
		s.maxIterations = n
	}
}

// NewService creates a Service.
func NewService(opts ...ServiceOption) *Service {
	s := &Service{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// ComputeRoute builds the grid from req and searches it. The returned
// ImplResponse carries the status code; a non-nil error means the request
// itself was unusable.
func (s *Service) ComputeRoute(ctx context.Context, req RouteRequest) (ImplResponse, error) {
	g, err := grid.New(mapfile.Rows(req.Rows))
	if err != nil {
		return Response(http.StatusBadRequest, nil), err
	}
	h, err := astar.HeuristicByName(req.Heuristic)
	if err != nil {
		return Response(http.StatusBadRequest, nil), err
	}

	opts := []astar.Option{
		astar.WithContext(ctx),
		astar.WithLogger(s.logger),
		astar.WithHeuristic(h),
		astar.WithMaxIterations(s.maxIterations),
	}
	if s.metrics != nil {
		opts = append(opts, astar.WithMetrics(s.metrics))
	}

	res, err := astar.Search(g, req.Start.Coordinate(), req.Goal.Coordinate(), opts...)
	if res == nil {
		return Response(StatusFor(err), nil), err
	}

	out := RouteResult{
		Reachable:  res.State == astar.StateSucceeded,
		Path:       res.Path,
		Cost:       res.Cost,
		Iterations: res.Iterations,
		Expanded:   res.Expanded,
		Discovered: res.Discovered,
	}
	switch {
	case err == nil && math.IsInf(res.Cost, 0):
		return Response(http.StatusUnprocessableEntity, nil), fmt.Errorf("%w: cell costs sum past %g", ErrCostOverflow, math.MaxFloat64)
	case err == nil:
		return Response(http.StatusOK, out), nil
	case errors.Is(err, astar.ErrNoPath):
		return Response(http.StatusNotFound, out), err
	default:
		return Response(StatusFor(err), out), err
	}
}
