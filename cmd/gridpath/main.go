// Command gridpath finds the lowest-cost route across a weighted grid map.
//
// Scenario:
//
//	A map file (YAML or JSON, see package mapfile) lists per-cell entry
//	costs and walls. gridpath runs A* from -start to -goal and prints the
//	node selected on each iteration (the help table) and the final path.
//	With -trace it also prints the open and closed lists of every iteration.
//	With -explain a failed search also reports the walkable region and size
//	of start and goal, showing whether a wall separates them.
//	Without -map it searches the bundled 10×10 reference terrain.
//
// Usage:
//
//	gridpath [-map terrain.yaml] [-start 3,5] [-goal 7,2] [-heuristic octile] [-trace] [-explain] [-json]
//
// Exit status is 0 on success, 1 when no path exists and 2 on invalid input,
// including maps whose path cost overflows float64.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/mapfile"
)

const (
	exitOK      = 0
	exitNoPath  = 1
	exitInvalid = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args, performs one search and writes the report to stdout.
// It returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	fs.SetOutput(stderr)
	mapPath := fs.String("map", "", "map file (.yaml, .yml or .json); empty uses the reference map")
	startFlag := fs.String("start", "", "start cell as x,y (default: the map's start)")
	goalFlag := fs.String("goal", "", "goal cell as x,y (default: the map's goal)")
	heuristic := fs.String("heuristic", "euclidean", "euclidean, manhattan, chebyshev or octile")
	maxIter := fs.Int("max-iterations", 0, "stop after this many iterations; 0 means unlimited")
	trace := fs.Bool("trace", false, "print the open and closed lists of every iteration")
	asJSON := fs.Bool("json", false, "print the result as JSON")
	explain := fs.Bool("explain", false, "when no path is found, report the walkable regions of start and goal")
	logLevel := fs.String("log-level", "warn", "debug, info, warn or error")
	logFormat := fs.String("log-format", "text", "text or json")
	if err := fs.Parse(args); err != nil {
		return exitInvalid
	}

	logger, err := newLogger(stderr, *logLevel, *logFormat)
	if err != nil {
		fmt.Fprintln(stderr, "gridpath:", err)
		return exitInvalid
	}

	m, err := loadMap(*mapPath)
	if err != nil {
		logger.Error("load_map_failed", slog.String("path", *mapPath), slog.String("error", err.Error()))
		return exitInvalid
	}
	start, err := endpoint("start", *startFlag, m.Start)
	if err != nil {
		logger.Error("invalid_flag", slog.String("error", err.Error()))
		return exitInvalid
	}
	goal, err := endpoint("goal", *goalFlag, m.Goal)
	if err != nil {
		logger.Error("invalid_flag", slog.String("error", err.Error()))
		return exitInvalid
	}
	h, err := astar.HeuristicByName(*heuristic)
	if err != nil {
		logger.Error("invalid_flag", slog.String("error", err.Error()))
		return exitInvalid
	}

	opts := []astar.Option{
		astar.WithLogger(logger),
		astar.WithHeuristic(h),
		astar.WithMaxIterations(*maxIter),
	}
	var traceErr error
	if *trace && !*asJSON {
		opts = append(opts, astar.WithObserver(func(s astar.Snapshot) {
			if traceErr == nil {
				traceErr = s.Render(stdout)
			}
		}))
	}

	res, err := astar.Search(m.Grid, start, goal, opts...)
	if res == nil {
		logger.Error("search_rejected", slog.String("error", err.Error()))
		return exitInvalid
	}
	if traceErr != nil {
		logger.Error("write_failed", slog.String("error", traceErr.Error()))
		return exitInvalid
	}
	if err == nil && math.IsInf(res.Cost, 0) {
		logger.Error("cost_overflow", slog.String("error", "path cost overflows float64; lower the cell costs"))
		return exitInvalid
	}

	var why *explanation
	if *explain && res.State == astar.StateFailed {
		x := explainFailure(m.Grid, start, goal)
		why = &x
	}

	if *asJSON {
		if werr := writeJSON(stdout, res, why); werr != nil {
			logger.Error("write_failed", slog.String("error", werr.Error()))
			return exitInvalid
		}
	} else if werr := writeReport(stdout, res, why); werr != nil {
		logger.Error("write_failed", slog.String("error", werr.Error()))
		return exitInvalid
	}

	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, astar.ErrNoPath), errors.Is(err, astar.ErrIterationLimit):
		fmt.Fprintln(stderr, "gridpath:", err)
		return exitNoPath
	default:
		fmt.Fprintln(stderr, "gridpath:", err)
		return exitInvalid
	}
}

func loadMap(path string) (*mapfile.Map, error) {
	if path == "" {
		return mapfile.Reference(), nil
	}

	return mapfile.Load(path)
}

// endpoint resolves a -start/-goal flag, falling back to the map default.
func endpoint(name, value string, fallback *grid.Coordinate) (grid.Coordinate, error) {
	if value == "" {
		if fallback == nil {
			return grid.Coordinate{}, fmt.Errorf("-%s is required: the map has no default", name)
		}
		return *fallback, nil
	}

	return parseCoordinate(value)
}

// parseCoordinate reads "x,y".
func parseCoordinate(s string) (grid.Coordinate, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return grid.Coordinate{}, fmt.Errorf("coordinate %q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return grid.Coordinate{}, fmt.Errorf("coordinate %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return grid.Coordinate{}, fmt.Errorf("coordinate %q: %w", s, err)
	}

	return grid.Coordinate{X: x, Y: y}, nil
}

func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("-log-level: %w", err)
	}
	opts := &slog.HandlerOptions{Level: lvl}
	switch format {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("-log-format: unknown format %q", format)
	}
}

func writeReport(w io.Writer, res *astar.Result, why *explanation) error {
	if err := astar.WriteSteps(w, "Help table", res.Selected); err != nil {
		return err
	}
	if res.State != astar.StateSucceeded {
		if _, err := fmt.Fprintf(w, "No path found after %d iterations\n", res.Iterations); err != nil {
			return err
		}
		if why != nil {
			return why.write(w)
		}
		return nil
	}
	if err := astar.WriteSteps(w, "Path", res.Path); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Cost: %g\n", res.Cost)

	return err
}

// explanation places start and goal in the grid's 8-connected regions.
type explanation struct {
	Start       grid.Coordinate `json:"start"`
	Goal        grid.Coordinate `json:"goal"`
	StartRegion int             `json:"start_region"`
	StartSize   int             `json:"start_region_size"`
	GoalRegion  int             `json:"goal_region"`
	GoalSize    int             `json:"goal_region_size"`
	Connected   bool            `json:"connected"`
}

// explainFailure labels the regions of g. start and goal must be walkable.
func explainFailure(g *grid.Grid, start, goal grid.Coordinate) explanation {
	labels := g.RegionLabels()
	var sizes []int
	for _, l := range labels {
		if l < 0 {
			continue
		}
		if l == len(sizes) {
			sizes = append(sizes, 0)
		}
		sizes[l]++
	}
	sl, gl := labels[g.Index(start)], labels[g.Index(goal)]

	return explanation{
		Start:       start,
		Goal:        goal,
		StartRegion: sl,
		StartSize:   sizes[sl],
		GoalRegion:  gl,
		GoalSize:    sizes[gl],
		Connected:   sl == gl,
	}
}

func (x explanation) write(w io.Writer) error {
	verdict := "start and goal are in different 8-connected regions"
	if x.Connected {
		verdict = "start and goal share a region; the iteration budget ran out"
	}
	_, err := fmt.Fprintf(w, "Explain:\nstart %s lies in region %d of %d cells\ngoal %s lies in region %d of %d cells\n%s\n",
		x.Start, x.StartRegion, x.StartSize, x.Goal, x.GoalRegion, x.GoalSize, verdict)

	return err
}

type jsonResult struct {
	State      string       `json:"state"`
	Path       []astar.Step `json:"path"`
	Cost       float64      `json:"cost"`
	Iterations int          `json:"iterations"`
	Expanded   int          `json:"expanded"`
	Discovered int          `json:"discovered"`
	Explain    *explanation `json:"explain,omitempty"`
}

// writeJSON marshals before writing, so a failure leaves w untouched.
func writeJSON(w io.Writer, res *astar.Result, why *explanation) error {
	out, err := json.MarshalIndent(jsonResult{
		State:      res.State.String(),
		Path:       res.Path,
		Cost:       res.Cost,
		Iterations: res.Iterations,
		Expanded:   res.Expanded,
		Discovered: res.Discovered,
		Explain:    why,
	}, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(out, '\n'))

	return err
}
