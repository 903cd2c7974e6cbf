package tsplib_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/gatsp/matrix"
	"github.com/katalvlaran/gatsp/tsp"
	"github.com/katalvlaran/gatsp/tsplib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const burma14 = `NAME: burma14
TYPE: TSP
COMMENT: 14-Staedte in Burma (Zaw Win)
DIMENSION: 14
EDGE_WEIGHT_TYPE: GEO
EDGE_WEIGHT_FORMAT: FUNCTION
DISPLAY_DATA_TYPE: COORD_DISPLAY
NODE_COORD_SECTION
   1  16.47       96.10
   2  16.47       94.44
   3  20.09       92.54
   4  22.39       93.37
   5  25.23       97.24
   6  22.00       96.05
   7  20.47       97.02
   8  17.20       96.29
   9  16.30       97.38
  10  14.05       98.12
  11  16.53       97.38
  12  21.52       95.59
  13  19.41       97.13
  14  20.09       94.55
EOF
`

const rect = `NAME : rect4
TYPE : TSP
DIMENSION : 4
EDGE_WEIGHT_TYPE : EUC_2D
NODE_COORD_SECTION
1 0 0
2 3 0
3 3 4
4 0 4
EOF
`

func mustParse(t *testing.T, src string) *tsplib.Problem {
	t.Helper()
	p, err := tsplib.Parse(strings.NewReader(src))
	require.NoError(t, err)

	return p
}

func TestParse_Euc2D(t *testing.T) {
	p := mustParse(t, rect)
	assert.Equal(t, "rect4", p.Name())
	assert.Equal(t, "rect4", p.Header.Name)
	assert.Equal(t, 4, p.Header.Dimension)
	assert.Equal(t, []tsp.City{1, 2, 3, 4}, p.Nodes())
	assert.Equal(t, tsplib.Point{X: 3, Y: 4}, p.Coords[3])

	w, err := p.Weight(1, 3)
	require.NoError(t, err)
	assert.Equal(t, 5.0, w)

	length, err := tsp.TourLength(tsp.Tour{1, 2, 3, 4}, p)
	require.NoError(t, err)
	assert.Equal(t, 14.0, length)
}

func TestParse_Burma14Optimum(t *testing.T) {
	p := mustParse(t, burma14)
	assert.Equal(t, tsplib.Geo, p.Header.EdgeWeightType)
	assert.Equal(t, "14-Staedte in Burma (Zaw Win)", p.Header.Comment)
	assert.Len(t, p.Nodes(), 14)

	w, err := p.Weight(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 153.0, w)

	opt := tsp.Tour{1, 2, 14, 3, 4, 5, 6, 12, 7, 13, 8, 11, 9, 10}
	length, err := tsp.TourLength(opt, p)
	require.NoError(t, err)
	known, ok := tsplib.KnownOptimum("burma14")
	require.True(t, ok)
	assert.Equal(t, known, length)
}

func TestParse_ExplicitFormats(t *testing.T) {
	// the same symmetric table in every supported layout
	want := [][]float64{
		{0, 1, 2, 3},
		{1, 0, 4, 5},
		{2, 4, 0, 6},
		{3, 5, 6, 0},
	}
	cases := []struct {
		name   string
		format string
		body   string
	}{
		{"full", tsplib.FullMatrix, "0 1 2 3\n1 0 4 5\n2 4 0 6\n3 5 6 0"},
		{"upper", tsplib.UpperRow, "1 2 3\n4 5\n6"},
		{"lower", tsplib.LowerRow, "1\n2 4\n3 5 6"},
		{"upper diag", tsplib.UpperDiagRow, "0 1 2 3\n0 4 5\n0 6\n0"},
		{"lower diag", tsplib.LowerDiagRow, "0\n1 0\n2 4 0\n3 5 6 0"},
		{"upper one line", tsplib.UpperRow, "1 2 3 4 5 6"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src := "NAME: tbl\nTYPE: TSP\nDIMENSION: 4\nEDGE_WEIGHT_TYPE: EXPLICIT\n" +
				"EDGE_WEIGHT_FORMAT: " + tc.format + "\nEDGE_WEIGHT_SECTION\n" + tc.body + "\nEOF\n"
			p := mustParse(t, src)
			assert.Nil(t, p.Coords)
			for i := 0; i < 4; i++ {
				for j := 0; j < 4; j++ {
					w, err := p.Weight(tsp.City(i+1), tsp.City(j+1))
					require.NoError(t, err)
					assert.Equal(t, want[i][j], w, "(%d,%d)", i+1, j+1)
				}
			}
		})
	}
}

func TestParse_AsymmetricATSP(t *testing.T) {
	src := "NAME: pair\nTYPE: ATSP\nDIMENSION: 2\nEDGE_WEIGHT_TYPE: EXPLICIT\n" +
		"EDGE_WEIGHT_FORMAT: FULL_MATRIX\nEDGE_WEIGHT_SECTION\n0 1\n2 0\nEOF\n"
	p := mustParse(t, src)
	w, err := p.Weight(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, w)
}

func TestParse_MissingEOFTolerated(t *testing.T) {
	p := mustParse(t, strings.TrimSuffix(rect, "EOF\n"))
	assert.Len(t, p.Nodes(), 4)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"bad dimension", "DIMENSION: x\n", tsplib.ErrMalformed},
		{"dimension mismatch", strings.Replace(rect, "DIMENSION : 4", "DIMENSION : 5", 1), tsplib.ErrMalformed},
		{"bad coordinate", "NODE_COORD_SECTION\n1 a 2\nEOF\n", tsplib.ErrMalformed},
		{"short coordinate", "NODE_COORD_SECTION\n1 2\nEOF\n", tsplib.ErrMalformed},
		{"duplicate node", "NODE_COORD_SECTION\n1 0 0\n1 1 1\nEOF\n", tsplib.ErrMalformed},
		{"data outside section", "NAME: x\n1 2 3\n", tsplib.ErrMalformed},
		{"unknown keyword", "FOO: bar\n", tsplib.ErrMalformed},
		{"no coordinates", "NAME: x\nTYPE: TSP\nEOF\n", tsplib.ErrMalformed},
		{"wrong weight count", "DIMENSION: 3\nEDGE_WEIGHT_TYPE: EXPLICIT\nEDGE_WEIGHT_FORMAT: UPPER_ROW\nEDGE_WEIGHT_SECTION\n1 2\nEOF\n", tsplib.ErrMalformed},
		{"bad weight", "DIMENSION: 2\nEDGE_WEIGHT_TYPE: EXPLICIT\nEDGE_WEIGHT_FORMAT: UPPER_ROW\nEDGE_WEIGHT_SECTION\nx\nEOF\n", tsplib.ErrMalformed},
		{"explicit without dimension", "EDGE_WEIGHT_TYPE: EXPLICIT\nEDGE_WEIGHT_SECTION\n1\nEOF\n", tsplib.ErrMalformed},
		{"cvrp", "TYPE: CVRP\nNODE_COORD_SECTION\n1 0 0\n2 1 1\nEOF\n", tsplib.ErrUnsupported},
		{"weight type", "EDGE_WEIGHT_TYPE: EUC_3D\nNODE_COORD_SECTION\n1 0 0\n2 1 1\nEOF\n", tsplib.ErrUnsupported},
		{"weight format", "DIMENSION: 2\nEDGE_WEIGHT_TYPE: EXPLICIT\nEDGE_WEIGHT_FORMAT: UPPER_COL\nEDGE_WEIGHT_SECTION\n1\nEOF\n", tsplib.ErrUnsupported},
		{"negative weight", "DIMENSION: 2\nEDGE_WEIGHT_TYPE: EXPLICIT\nEDGE_WEIGHT_FORMAT: UPPER_ROW\nEDGE_WEIGHT_SECTION\n-3\nEOF\n", matrix.ErrNegative},
		{"asymmetric tsp", "TYPE: TSP\nDIMENSION: 2\nEDGE_WEIGHT_TYPE: EXPLICIT\nEDGE_WEIGHT_FORMAT: FULL_MATRIX\nEDGE_WEIGHT_SECTION\n0 1 2 0\nEOF\n", matrix.ErrAsymmetry},
		{"demand section", "DEMAND_SECTION\n", tsplib.ErrUnsupported},
		{"single city", "NODE_COORD_SECTION\n1 0 0\nEOF\n", tsp.ErrTooFewCities},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tsplib.Parse(strings.NewReader(tc.src))
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rect4.tsp")
	require.NoError(t, os.WriteFile(path, []byte(rect), 0o644))

	p, err := tsplib.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "rect4", p.Name())

	_, err = tsplib.Load(filepath.Join(t.TempDir(), "missing.tsp"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
