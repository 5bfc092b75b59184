package threshold

import "github.com/nightscan/starfield/grid"

// Binarize produces an occupancy mask of the same dimensions as f where each
// cell is active iff its luminance strictly exceeds sensitivity. The strict
// inequality is deliberate: sensitivity 255 yields an all-inactive mask even
// when the field contains fully bright samples.
// Complexity: O(W×H) time and memory.
func Binarize(f *grid.Field, sensitivity uint8) *grid.Mask {
	m, _ := grid.NewMask(f.Width(), f.Height())
	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			if f.At(x, y) > sensitivity {
				m.Set(x, y, true)
			}
		}
	}

	return m
}
