package render

import (
	"image"
	"image/color"

	"github.com/nightscan/starfield/grid"
)

// Luminance values for rendered mask cells.
const (
	activeLuma   = 255
	inactiveLuma = 0
)

// Intensity renders m as a luminance grid: active cells become 255,
// inactive cells 0. Rows are indexed [y][x], matching grid.NewField input.
// Complexity: O(W×H).
func Intensity(m *grid.Mask) [][]uint8 {
	rows := make([][]uint8, m.Height())
	for y := 0; y < m.Height(); y++ {
		rows[y] = make([]uint8, m.Width())
		for x := 0; x < m.Width(); x++ {
			if m.At(x, y) {
				rows[y][x] = activeLuma
			} else {
				rows[y][x] = inactiveLuma
			}
		}
	}

	return rows
}

// Gray renders m into a std *image.Gray of identical dimensions, ready to be
// handed to an image encoder.
// Complexity: O(W×H).
func Gray(m *grid.Mask) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, m.Width(), m.Height()))
	for i, active := range m.Cells() {
		if active {
			x, y := m.Coordinate(i)
			img.SetGray(x, y, color.Gray{Y: activeLuma})
		}
	}

	return img
}
