// SPDX-License-Identifier: MIT

package tsplib

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/gatsp/matrix"
	"github.com/katalvlaran/gatsp/tsp"
)

// Edge weight formats of EXPLICIT instances.
const (
	FullMatrix   = "FULL_MATRIX"
	UpperRow     = "UPPER_ROW"
	LowerRow     = "LOWER_ROW"
	UpperDiagRow = "UPPER_DIAG_ROW"
	LowerDiagRow = "LOWER_DIAG_ROW"
)

// maxLineBytes bounds a single line; explicit matrices are sometimes
// written on very long lines.
const maxLineBytes = 16 << 20

// section is the parser position inside the file.
type section int

const (
	inHeader section = iota
	inCoords
	inWeights
	inDisplay
)

// Load reads the TSPLIB file at path.
func Load(path string) (*Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tsplib: open %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads a TSPLIB instance from r and precomputes its distance table.
//
// Errors: ErrMalformed for syntax or consistency problems, ErrUnsupported
// for unknown types or formats, and tsp.ErrInvalidInstance (via
// tsp.NewMatrixProblem) for instances with fewer than two cities.
//
// Complexity: O(n²) time and memory for n cities.
func Parse(r io.Reader) (*Problem, error) {
	var (
		sc      = bufio.NewScanner(r)
		h       Header
		sec     = inHeader
		lineNo  int
		cities  []tsp.City
		coords  = map[tsp.City]Point{}
		weights []float64
	)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)

		if isKeyword(fields[0]) {
			key, value := splitKeyValue(line)
			switch key {
			case "EOF":
				return build(h, cities, coords, weights)
			case "NODE_COORD_SECTION":
				sec = inCoords
			case "EDGE_WEIGHT_SECTION":
				sec = inWeights
			case "DISPLAY_DATA_SECTION":
				sec = inDisplay
			case "NAME":
				h.Name = value
			case "COMMENT":
				h.Comment = value
			case "TYPE":
				h.Type = value
			case "DIMENSION":
				n, err := strconv.Atoi(value)
				if err != nil || n <= 0 {
					return nil, malformedf(lineNo, "DIMENSION %q", value)
				}
				h.Dimension = n
			case "EDGE_WEIGHT_TYPE":
				h.EdgeWeightType = value
			case "EDGE_WEIGHT_FORMAT":
				h.EdgeWeightFormat = value
			case "NODE_COORD_TYPE", "DISPLAY_DATA_TYPE", "CAPACITY":
				// accepted, not needed
			default:
				if strings.HasSuffix(key, "_SECTION") {
					return nil, fmt.Errorf("%w: %s", ErrUnsupported, key)
				}
				return nil, malformedf(lineNo, "unknown keyword %q", key)
			}
			continue
		}

		switch sec {
		case inCoords:
			if len(fields) < 3 {
				return nil, malformedf(lineNo, "coordinate line %q", line)
			}
			id, err := strconv.Atoi(fields[0])
			if err != nil {
				return nil, malformedf(lineNo, "node id %q", fields[0])
			}
			x, errX := strconv.ParseFloat(fields[1], 64)
			y, errY := strconv.ParseFloat(fields[2], 64)
			if errX != nil || errY != nil {
				return nil, malformedf(lineNo, "coordinates %q", line)
			}
			c := tsp.City(id)
			if _, dup := coords[c]; dup {
				return nil, malformedf(lineNo, "node %d listed twice", id)
			}
			coords[c] = Point{X: x, Y: y}
			cities = append(cities, c)
		case inWeights:
			for _, tok := range fields {
				w, err := strconv.ParseFloat(tok, 64)
				if err != nil {
					return nil, malformedf(lineNo, "weight %q", tok)
				}
				weights = append(weights, w)
			}
		case inDisplay:
			// display coordinates do not affect distances
		default:
			return nil, malformedf(lineNo, "data outside a section: %q", line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("tsplib: read: %w", err)
	}

	// a missing EOF marker is tolerated
	return build(h, cities, coords, weights)
}

// isKeyword reports whether a token starts a header line or section marker.
func isKeyword(tok string) bool {
	c := tok[0]
	return (c >= 'A' && c <= 'Z') || c == '_'
}

// splitKeyValue splits "KEY : VALUE", "KEY: VALUE" and bare "KEY".
func splitKeyValue(line string) (string, string) {
	if i := strings.IndexByte(line, ':'); i >= 0 {
		return strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+1:])
	}
	fields := strings.Fields(line)

	return fields[0], strings.TrimSpace(strings.TrimPrefix(line, fields[0]))
}

// build validates the header against the collected data and computes the
// distance table.
func build(h Header, cities []tsp.City, coords map[tsp.City]Point, weights []float64) (*Problem, error) {
	switch h.Type {
	case "TSP", "ATSP", "":
	default:
		return nil, fmt.Errorf("%w: TYPE %q", ErrUnsupported, h.Type)
	}
	if h.EdgeWeightType == "" {
		h.EdgeWeightType = Euc2D
	}

	var (
		dist *matrix.Dense
		err  error
	)
	if h.EdgeWeightType == Explicit {
		if h.Dimension == 0 {
			return nil, fmt.Errorf("%w: EXPLICIT instance without DIMENSION", ErrMalformed)
		}
		if dist, err = explicitMatrix(h.Dimension, h.EdgeWeightFormat, weights); err != nil {
			return nil, err
		}
		if err = matrix.ValidateDistances(dist); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		// only a full matrix can break symmetry
		if h.Type != "ATSP" {
			if err = matrix.ValidateSymmetric(dist, 0); err != nil {
				return nil, fmt.Errorf("%w: TYPE TSP: %w", ErrMalformed, err)
			}
		}
		cities = tsp.SequentialCities(h.Dimension)
		coords = nil
	} else {
		if h.Dimension != 0 && len(cities) != h.Dimension {
			return nil, fmt.Errorf("%w: DIMENSION %d but %d coordinates", ErrMalformed, h.Dimension, len(cities))
		}
		if h.Dimension == 0 {
			h.Dimension = len(cities)
		}
		if dist, err = coordMatrix(h.EdgeWeightType, cities, coords); err != nil {
			return nil, err
		}
	}

	mp, err := tsp.NewMatrixProblem(h.Name, cities, dist)
	if err != nil {
		return nil, err
	}

	return &Problem{MatrixProblem: mp, Header: h, Coords: coords}, nil
}

// coordMatrix computes every pairwise distance of a coordinate instance.
func coordMatrix(weightType string, cities []tsp.City, coords map[tsp.City]Point) (*matrix.Dense, error) {
	fn, err := DistanceFor(weightType)
	if err != nil {
		return nil, err
	}
	n := len(cities)
	if n == 0 {
		return nil, fmt.Errorf("%w: no NODE_COORD_SECTION", ErrMalformed)
	}
	dist, err := matrix.NewSquare(n)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if err = dist.SetSymmetric(i, j, fn(coords[cities[i]], coords[cities[j]])); err != nil {
				return nil, err
			}
		}
	}

	return dist, nil
}

// explicitMatrix lays the EDGE_WEIGHT_SECTION values out in an n×n table.
func explicitMatrix(n int, format string, w []float64) (*matrix.Dense, error) {
	if format == "" {
		format = FullMatrix
	}
	var want int
	switch format {
	case FullMatrix:
		want = n * n
	case UpperRow, LowerRow:
		want = n * (n - 1) / 2
	case UpperDiagRow, LowerDiagRow:
		want = n * (n + 1) / 2
	default:
		return nil, fmt.Errorf("%w: EDGE_WEIGHT_FORMAT %q", ErrUnsupported, format)
	}
	if len(w) != want {
		return nil, fmt.Errorf("%w: %s of dimension %d needs %d weights, got %d", ErrMalformed, format, n, want, len(w))
	}

	dist, err := matrix.NewSquare(n)
	if err != nil {
		return nil, err
	}
	var (
		k    int
		i, j int
		set  = dist.SetSymmetric
	)
	switch format {
	case FullMatrix:
		set = dist.Set
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if err = set(i, j, w[k]); err != nil {
					return nil, err
				}
				k++
			}
		}
	case UpperRow:
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if err = set(i, j, w[k]); err != nil {
					return nil, err
				}
				k++
			}
		}
	case LowerRow:
		for i = 0; i < n; i++ {
			for j = 0; j < i; j++ {
				if err = set(i, j, w[k]); err != nil {
					return nil, err
				}
				k++
			}
		}
	case UpperDiagRow:
		for i = 0; i < n; i++ {
			for j = i; j < n; j++ {
				if err = set(i, j, w[k]); err != nil {
					return nil, err
				}
				k++
			}
		}
	case LowerDiagRow:
		for i = 0; i < n; i++ {
			for j = 0; j <= i; j++ {
				if err = set(i, j, w[k]); err != nil {
					return nil, err
				}
				k++
			}
		}
	}

	return dist, nil
}
