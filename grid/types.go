// Package grid defines the core raster types, connectivity modes, and
// sentinel errors for the starfield pipeline.
package grid

import "errors"

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)

// Connectivity selects neighbor adjacency: orthogonal (Conn4) or including
// diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional adjacency: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional adjacency: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Precomputed offset tables, shared by all traversals.
var (
	conn4Offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	conn8Offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Valid reports whether c is a known connectivity mode.
func (c Connectivity) Valid() bool {
	return c == Conn4 || c == Conn8
}

// Offsets returns the (Δx, Δy) neighbor offsets for c. The returned slice is
// shared and must not be modified. Unknown modes fall back to Conn4.
// Complexity: O(1).
func (c Connectivity) Offsets() [][2]int {
	if c == Conn8 {
		return conn8Offsets
	}
	return conn4Offsets
}
