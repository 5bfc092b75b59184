package grid

// Mask is a rectangular boolean occupancy grid stored as a flat row-major
// slice. A true cell is "active"; false is background.
type Mask struct {
	width, height int
	cells         []bool
}

// NewMask allocates an all-false mask with the given dimensions.
// Returns ErrEmptyGrid if either dimension is not positive.
// Complexity: O(W×H) time and memory.
func NewMask(width, height int) (*Mask, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}

	return &Mask{width: width, height: height, cells: make([]bool, width*height)}, nil
}

// Width returns the number of columns.
func (m *Mask) Width() int { return m.width }

// Height returns the number of rows.
func (m *Mask) Height() int { return m.height }

// Index maps (x, y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (m *Mask) Index(x, y int) int {
	return y*m.width + x
}

// Coordinate converts a row-major index back to (x, y).
// Complexity: O(1).
func (m *Mask) Coordinate(idx int) (x, y int) {
	return idx % m.width, idx / m.width
}

// InBounds reports whether (x, y) lies within the mask boundaries.
// Complexity: O(1).
func (m *Mask) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// At returns the cell at (x, y). Coordinates must be in bounds.
func (m *Mask) At(x, y int) bool {
	return m.cells[m.Index(x, y)]
}

// Set assigns the cell at (x, y). Coordinates must be in bounds.
func (m *Mask) Set(x, y int, v bool) {
	m.cells[m.Index(x, y)] = v
}

// Cells exposes the backing slice in row-major order so traversals can scan
// without per-cell coordinate math. Callers must treat it as read-only unless
// they own the mask.
func (m *Mask) Cells() []bool { return m.cells }

// CountActive returns the number of true cells.
// Complexity: O(W×H).
func (m *Mask) CountActive() int {
	n := 0
	for _, c := range m.cells {
		if c {
			n++
		}
	}

	return n
}

// Equal reports whether m and o have identical dimensions and identical
// cell values.
// Complexity: O(W×H).
func (m *Mask) Equal(o *Mask) bool {
	if m.width != o.width || m.height != o.height {
		return false
	}
	for i, c := range m.cells {
		if c != o.cells[i] {
			return false
		}
	}

	return true
}
