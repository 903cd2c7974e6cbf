// SPDX-License-Identifier: MIT

// Package tsplib reads TSPLIB instance files into tsp problems.
//
// Supported keywords:
//
//	NAME, COMMENT, TYPE (TSP, ATSP), DIMENSION,
//	EDGE_WEIGHT_TYPE (EUC_2D, CEIL_2D, MAN_2D, MAX_2D, ATT, GEO, EXPLICIT),
//	EDGE_WEIGHT_FORMAT (FULL_MATRIX, UPPER_ROW, LOWER_ROW, UPPER_DIAG_ROW,
//	LOWER_DIAG_ROW), NODE_COORD_SECTION, EDGE_WEIGHT_SECTION,
//	DISPLAY_DATA_SECTION (skipped), EOF.
//
// Every pairwise distance is computed once at load time with the TSPLIB
// rounding rules and stored in a matrix.Dense, so the returned Problem answers
// Weight in O(1). Cities keep their file numbering; EXPLICIT instances number
// them 1..DIMENSION.
package tsplib
