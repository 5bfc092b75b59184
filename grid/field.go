package grid

// Field is an immutable rectangular grid of luminance samples (0–255).
// Rows are indexed samples[y][x]; Width and Height are fixed at construction.
type Field struct {
	width, height int
	samples       [][]uint8
}

// NewField constructs a Field from a non-empty, rectangular 2D slice of
// luminance samples. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if samples has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func NewField(samples [][]uint8) (*Field, error) {
	if len(samples) == 0 || len(samples[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(samples), len(samples[0])
	for _, row := range samples {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation.
	rows := make([][]uint8, h)
	for y := 0; y < h; y++ {
		rows[y] = make([]uint8, w)
		copy(rows[y], samples[y])
	}

	return &Field{width: w, height: h, samples: rows}, nil
}

// Width returns the number of columns.
func (f *Field) Width() int { return f.width }

// Height returns the number of rows.
func (f *Field) Height() int { return f.height }

// At returns the luminance sample at (x, y). Coordinates must be in bounds.
// Complexity: O(1).
func (f *Field) At(x, y int) uint8 {
	return f.samples[y][x]
}

// InBounds reports whether (x, y) lies within the field boundaries.
// Complexity: O(1).
func (f *Field) InBounds(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}
