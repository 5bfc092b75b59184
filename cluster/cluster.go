// Package cluster implements connected component counting over a boolean
// occupancy grid, the core of the star-counting pipeline.
package cluster

import (
	"fmt"

	"github.com/nightscan/starfield/grid"
)

// Count returns the number of maximal connected regions of active cells in
// m, under the connectivity chosen by opts (Conn8 by default).
// Returns ErrNilMask for a nil mask or ErrOptionViolation for bad options.
//
// Panics if the total-coverage invariant is violated after the scan; see the
// package documentation.
//
// Complexity: O(W×H×d) time (d = 4 or 8), O(W×H) memory.
func Count(m *grid.Mask, opts ...Option) (int, error) {
	s, err := newScanner(m, opts)
	if err != nil {
		return 0, err
	}
	count, _ := s.scan(false)

	return count, nil
}

// Components returns every cluster as a slice of row-major cell indices, in
// discovery order; cells within a cluster appear in traversal order.
// Use m.Coordinate to convert an index back to (x, y).
// Returns ErrNilMask for a nil mask or ErrOptionViolation for bad options.
//
// Complexity: O(W×H×d) time, O(W×H) memory.
func Components(m *grid.Mask, opts ...Option) ([][]int, error) {
	s, err := newScanner(m, opts)
	if err != nil {
		return nil, err
	}
	_, comps := s.scan(true)

	return comps, nil
}

// scanner encapsulates mutable scan state: the mask under analysis, resolved
// options, and the visited flags.
type scanner struct {
	mask    *grid.Mask
	opts    Options
	offsets [][2]int
	seen    []bool
}

// newScanner resolves options and allocates the visited flags.
func newScanner(m *grid.Mask, opts []Option) (*scanner, error) {
	if m == nil {
		return nil, ErrNilMask
	}
	// Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &scanner{
		mask:    m,
		opts:    o,
		offsets: o.Conn.Offsets(),
		seen:    make([]bool, m.Width()*m.Height()),
	}, nil
}

// scan walks the mask in row-major order, flooding one cluster per active
// unvisited cell. When collect is true, cluster memberships are gathered.
// Verifies total coverage before returning.
func (s *scanner) scan(collect bool) (int, [][]int) {
	count := 0
	var comps [][]int

	for y := 0; y < s.mask.Height(); y++ {
		for x := 0; x < s.mask.Width(); x++ {
			if !s.mask.At(x, y) || s.seen[s.mask.Index(x, y)] {
				continue
			}
			count++
			s.opts.OnCluster(x, y)
			comp := s.flood(x, y, collect)
			if collect {
				comps = append(comps, comp)
			}
		}
	}
	s.verifyCoverage()

	return count, comps
}

// flood marks every cell connected to (x, y) as visited using an explicit
// worklist. Cells are marked before being pushed, so each enters the
// frontier at most once. Out-of-bounds neighbors are skipped; signed
// coordinates make underflow at the grid edge impossible.
func (s *scanner) flood(x, y int, collect bool) []int {
	start := s.mask.Index(x, y)
	s.seen[start] = true
	frontier := []int{start}
	var comp []int

	for len(frontier) > 0 {
		u := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		if collect {
			comp = append(comp, u)
		}
		ux, uy := s.mask.Coordinate(u)
		for _, d := range s.offsets {
			vx, vy := ux+d[0], uy+d[1]
			if !s.mask.InBounds(vx, vy) || !s.mask.At(vx, vy) {
				continue
			}
			v := s.mask.Index(vx, vy)
			if !s.seen[v] {
				s.seen[v] = true
				frontier = append(frontier, v)
			}
		}
	}

	return comp
}

// verifyCoverage asserts that the visited flags equal the occupancy cell for
// cell. Any discrepancy is an internal algorithmic defect, never an input
// problem, so it panics rather than returning an error.
func (s *scanner) verifyCoverage() {
	for i, active := range s.mask.Cells() {
		if s.seen[i] != active {
			x, y := s.mask.Coordinate(i)
			panic(fmt.Sprintf(
				"cluster: coverage invariant violated at (%d,%d): visited=%t active=%t",
				x, y, s.seen[i], active,
			))
		}
	}
}
