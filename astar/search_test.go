package astar_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
)

type recordingSink struct {
	stats []astar.SearchStats
}

func (r *recordingSink) ObserveSearch(s astar.SearchStats) { r.stats = append(r.stats, s) }

func newRecorder() (*tracetest.SpanRecorder, *sdktrace.TracerProvider) {
	sr := tracetest.NewSpanRecorder()
	return sr, sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
}

func attr(kvs []attribute.KeyValue, key string) (attribute.Value, bool) {
	for _, kv := range kvs {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}

	return attribute.Value{}, false
}

func TestSearch_Span(t *testing.T) {
	sr, tp := newRecorder()
	g := mustGrid(t, referenceRows())

	_, err := astar.Search(g, grid.Coordinate{X: 3, Y: 5}, grid.Coordinate{X: 7, Y: 2},
		astar.WithTracer(tp.Tracer("test")))
	require.NoError(t, err)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	span := spans[0]
	assert.Equal(t, "astar.Search", span.Name())
	assert.Equal(t, codes.Ok, span.Status().Code)

	v, ok := attr(span.Attributes(), "state")
	require.True(t, ok)
	assert.Equal(t, "succeeded", v.AsString())
	v, ok = attr(span.Attributes(), "iterations")
	require.True(t, ok)
	assert.Equal(t, int64(13), v.AsInt64())
	v, ok = attr(span.Attributes(), "cost")
	require.True(t, ok)
	assert.Equal(t, 16.0, v.AsFloat64())
}

func TestSearch_SpanOnRejectedInput(t *testing.T) {
	sr, tp := newRecorder()
	g := mustGrid(t, [][]float64{{z, 1}})

	_, err := astar.Search(g, grid.Coordinate{X: 0}, grid.Coordinate{X: 1},
		astar.WithTracer(tp.Tracer("test")))
	require.ErrorIs(t, err, astar.ErrInvalidEndpoint)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	require.NotEmpty(t, spans[0].Events(), "error must be recorded on the span")
	assert.Equal(t, "exception", spans[0].Events()[0].Name)
}

func TestSearch_SpanParentFromContext(t *testing.T) {
	sr, tp := newRecorder()
	ctx, parent := tp.Tracer("test").Start(context.Background(), "caller")
	g := mustGrid(t, [][]float64{{1, 1}})

	_, err := astar.Search(g, grid.Coordinate{}, grid.Coordinate{X: 1},
		astar.WithTracer(tp.Tracer("test")), astar.WithContext(ctx))
	require.NoError(t, err)
	parent.End()

	spans := sr.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "astar.Search", spans[0].Name())
	assert.Equal(t, parent.SpanContext().SpanID(), spans[0].Parent().SpanID())
}

func TestSearch_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	g := mustGrid(t, [][]float64{{1, z, 1}})

	_, err := astar.Search(g, grid.Coordinate{X: 0}, grid.Coordinate{X: 2}, astar.WithLogger(logger))
	require.ErrorIs(t, err, astar.ErrNoPath)

	out := buf.String()
	assert.Contains(t, out, `"msg":"astar_search_start"`)
	assert.Contains(t, out, `"msg":"astar_search_complete"`)
	assert.Contains(t, out, `"outcome":"no_path"`)
	assert.Contains(t, out, `"start":"(0, 0)"`)
}

func TestSearch_Metrics(t *testing.T) {
	sink := &recordingSink{}
	g := mustGrid(t, referenceRows())

	_, err := astar.Search(g, grid.Coordinate{X: 3, Y: 5}, grid.Coordinate{X: 7, Y: 2}, astar.WithMetrics(sink))
	require.NoError(t, err)
	_, err = astar.Search(g, grid.Coordinate{X: 5, Y: 0}, grid.Coordinate{X: 7, Y: 2}, astar.WithMetrics(sink))
	require.ErrorIs(t, err, astar.ErrInvalidEndpoint)
	_, err = astar.Search(g, grid.Coordinate{X: 3, Y: 5}, grid.Coordinate{X: 7, Y: 2},
		astar.WithMetrics(sink), astar.WithMaxIterations(2))
	require.ErrorIs(t, err, astar.ErrIterationLimit)

	require.Len(t, sink.stats, 3)
	ok := sink.stats[0]
	assert.Equal(t, astar.OutcomeSucceeded, ok.Outcome)
	assert.Equal(t, 13, ok.Iterations)
	assert.Equal(t, 12, ok.Expanded)
	assert.Equal(t, 6, ok.PathLength)
	assert.Equal(t, 16.0, ok.Cost)
	assert.Equal(t, astar.OutcomeRejected, sink.stats[1].Outcome)
	assert.Equal(t, astar.OutcomeLimit, sink.stats[2].Outcome)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "running", astar.StateRunning.String())
	assert.Equal(t, "succeeded", astar.StateSucceeded.String())
	assert.Equal(t, "failed", astar.StateFailed.String())
	assert.Equal(t, "State(7)", astar.State(7).String())
}
