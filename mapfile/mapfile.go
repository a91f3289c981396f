package mapfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for map decoding.
var (
	// ErrUnknownCell indicates a cell that is neither a number nor a blocked marker.
	ErrUnknownCell = errors.New("mapfile: unknown cell value")
	// ErrUnsupportedFormat indicates a format or file extension other than YAML/JSON.
	ErrUnsupportedFormat = errors.New("mapfile: unsupported format")
)

// Format selects the document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format from a file extension (.yaml, .yml, .json).
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// Cell is one decoded grid value. Blocked markers decode to grid.Blocked.
type Cell float64

// UnmarshalYAML accepts a scalar number or a blocked marker.
func (c *Cell) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: expected a scalar", ErrUnknownCell, n.Line)
	}
	if err := c.parse(n.Value); err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}

	return nil
}

// UnmarshalJSON accepts a number or a blocked-marker string.
func (c *Cell) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		return c.parse(s)
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("%w: %s", ErrUnknownCell, b)
	}
	*c = Cell(f)

	return nil
}

// MarshalJSON writes blocked cells as "Z" and costs as numbers.
func (c Cell) MarshalJSON() ([]byte, error) {
	if float64(c) == grid.Blocked {
		return []byte(`"Z"`), nil
	}

	return json.Marshal(float64(c))
}

func (c *Cell) parse(s string) error {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "Z", "X", "#":
		*c = Cell(grid.Blocked)
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return fmt.Errorf("%w: %q", ErrUnknownCell, s)
	}
	*c = Cell(f)

	return nil
}

// Rows converts decoded cells to the [][]float64 shape grid.New expects.
func Rows(cells [][]Cell) [][]float64 {
	rows := make([][]float64, len(cells))
	for y, row := range cells {
		rows[y] = make([]float64, len(row))
		for x, v := range row {
			rows[y][x] = float64(v)
		}
	}

	return rows
}

// Point is an [x, y] pair in a document.
type Point [2]int

// Coordinate converts the pair to a grid.Coordinate.
func (p Point) Coordinate() grid.Coordinate {
	return grid.Coordinate{X: p[0], Y: p[1]}
}

type document struct {
	Start *Point   `yaml:"start" json:"start"`
	Goal  *Point   `yaml:"goal" json:"goal"`
	Rows  [][]Cell `yaml:"rows" json:"rows"`
}

// Map is a decoded terrain with optional default endpoints.
type Map struct {
	Grid  *grid.Grid
	Start *grid.Coordinate
	Goal  *grid.Coordinate
}

// Decode reads one document from r. Unknown fields are rejected.
func Decode(r io.Reader, f Format) (*Map, error) {
	var doc document
	switch f {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("mapfile: decode yaml: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("mapfile: decode json: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}

	g, err := grid.New(Rows(doc.Rows))
	if err != nil {
		return nil, fmt.Errorf("mapfile: %w", err)
	}
	m := &Map{Grid: g}
	if doc.Start != nil {
		c := doc.Start.Coordinate()
		m.Start = &c
	}
	if doc.Goal != nil {
		c := doc.Goal.Coordinate()
		m.Goal = &c
	}

	return m, nil
}

// Load opens path and decodes it in the format implied by its extension.
func Load(path string) (*Map, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mapfile: %w", err)
	}
	defer file.Close()

	return Decode(file, f)
}
