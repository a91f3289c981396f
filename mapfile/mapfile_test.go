package mapfile_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/mapfile"
)

func TestLoad_JSON(t *testing.T) {
	m, err := mapfile.Load("testdata/small.json")
	require.NoError(t, err)

	assert.Equal(t, 3, m.Grid.Width())
	assert.Equal(t, 3, m.Grid.Height())
	require.NotNil(t, m.Start)
	require.NotNil(t, m.Goal)
	assert.Equal(t, grid.Coordinate{X: 0, Y: 0}, *m.Start)
	assert.Equal(t, grid.Coordinate{X: 2, Y: 0}, *m.Goal)

	blocked, err := m.Grid.IsBlocked(grid.Coordinate{X: 1, Y: 1})
	require.NoError(t, err)
	assert.True(t, blocked, "# is a blocked marker")
	blocked, err = m.Grid.IsBlocked(grid.Coordinate{X: 2, Y: 2})
	require.NoError(t, err)
	assert.True(t, blocked, "markers are case-insensitive")
}

func TestLoad_YAMLWithoutEndpoints(t *testing.T) {
	m, err := mapfile.Load("testdata/small.yml")
	require.NoError(t, err)

	assert.Nil(t, m.Start)
	assert.Nil(t, m.Goal)
	cost, err := m.Grid.Cost(grid.Coordinate{X: 1, Y: 0})
	require.NoError(t, err)
	assert.Equal(t, 2.5, cost)
}

func TestLoad_Errors(t *testing.T) {
	_, err := mapfile.Load("testdata/map.txt")
	assert.ErrorIs(t, err, mapfile.ErrUnsupportedFormat)

	_, err = mapfile.Load("testdata/missing.yaml")
	assert.Error(t, err)
}

func TestDecode_Errors(t *testing.T) {
	cases := []struct {
		name   string
		format mapfile.Format
		doc    string
		want   error
	}{
		{"unknown yaml cell", mapfile.FormatYAML, "rows: [[1, W]]", mapfile.ErrUnknownCell},
		{"unknown json cell", mapfile.FormatJSON, `{"rows": [[1, "W"]]}`, mapfile.ErrUnknownCell},
		{"yaml inf cell", mapfile.FormatYAML, "rows: [[1, inf, 1]]", mapfile.ErrUnknownCell},
		{"yaml nan cell", mapfile.FormatYAML, "rows: [[1, NaN]]", mapfile.ErrUnknownCell},
		{"json infinity cell", mapfile.FormatJSON, `{"rows": [[1, "Infinity"]]}`, mapfile.ErrUnknownCell},
		{"json signed inf cell", mapfile.FormatJSON, `{"rows": [[1, "+Inf", 1]]}`, mapfile.ErrUnknownCell},
		{"json bool cell", mapfile.FormatJSON, `{"rows": [[1, true]]}`, mapfile.ErrUnknownCell},
		{"nested yaml cell", mapfile.FormatYAML, "rows: [[1, [2]]]", mapfile.ErrUnknownCell},
		{"ragged", mapfile.FormatYAML, "rows: [[1, 2], [3]]", grid.ErrNonRectangular},
		{"empty", mapfile.FormatJSON, `{"rows": []}`, grid.ErrEmptyGrid},
		{"negative", mapfile.FormatJSON, `{"rows": [[-1]]}`, grid.ErrInvalidCost},
		{"format", mapfile.Format("toml"), "rows = []", mapfile.ErrUnsupportedFormat},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := mapfile.Decode(strings.NewReader(tc.doc), tc.format)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestDecode_UnknownField(t *testing.T) {
	_, err := mapfile.Decode(strings.NewReader("rows: [[1]]\nheight: 3\n"), mapfile.FormatYAML)
	assert.Error(t, err)
	_, err = mapfile.Decode(strings.NewReader(`{"rows": [[1]], "height": 3}`), mapfile.FormatJSON)
	assert.Error(t, err)
}

func TestFormatFromPath(t *testing.T) {
	f, err := mapfile.FormatFromPath("maps/A.YML")
	require.NoError(t, err)
	assert.Equal(t, mapfile.FormatYAML, f)
	f, err = mapfile.FormatFromPath("a.json")
	require.NoError(t, err)
	assert.Equal(t, mapfile.FormatJSON, f)
	_, err = mapfile.FormatFromPath("a")
	assert.ErrorIs(t, err, mapfile.ErrUnsupportedFormat)
}

func TestCell_MarshalJSON(t *testing.T) {
	out, err := json.Marshal([]mapfile.Cell{1.5, mapfile.Cell(grid.Blocked), 0})
	require.NoError(t, err)
	assert.JSONEq(t, `[1.5, "Z", 0]`, string(out))
}

func TestReference(t *testing.T) {
	m := mapfile.Reference()

	assert.Equal(t, 10, m.Grid.Width())
	assert.Equal(t, 10, m.Grid.Height())
	require.NotNil(t, m.Start)
	require.NotNil(t, m.Goal)
	assert.Equal(t, grid.Coordinate{X: 3, Y: 5}, *m.Start)
	assert.Equal(t, grid.Coordinate{X: 7, Y: 2}, *m.Goal)
	assert.Equal(t, []float64{3, 3, 3, 3, 3, grid.Blocked, 4, 5, grid.Blocked, 9}, m.Grid.Row(3))
}
