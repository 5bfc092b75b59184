package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nightscan/starfield/grid"
	"github.com/nightscan/starfield/render"
	"github.com/nightscan/starfield/threshold"
)

// TestIntensity_AllInactive checks that an empty mask renders to an all-zero
// grid of identical dimensions.
func TestIntensity_AllInactive(t *testing.T) {
	m, err := grid.NewMask(3, 2)
	if err != nil {
		t.Fatalf("NewMask error: %v", err)
	}

	got := render.Intensity(m)
	want := [][]uint8{
		{0, 0, 0},
		{0, 0, 0},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Intensity mismatch (-want +got):\n%s", diff)
	}
}

// TestIntensity_ActiveCells checks that active cells map to 255 and inactive
// cells to 0, not to the original luminance.
func TestIntensity_ActiveCells(t *testing.T) {
	m, _ := grid.NewMask(3, 2)
	m.Set(0, 0, true)
	m.Set(2, 1, true)

	got := render.Intensity(m)
	want := [][]uint8{
		{255, 0, 0},
		{0, 0, 255},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Intensity mismatch (-want +got):\n%s", diff)
	}
}

// TestGray_MatchesIntensity verifies the image form agrees with the grid
// form pixel for pixel.
func TestGray_MatchesIntensity(t *testing.T) {
	m, _ := grid.NewMask(4, 3)
	m.Set(1, 0, true)
	m.Set(3, 2, true)
	m.Set(0, 1, true)

	img := render.Gray(m)
	b := img.Bounds()
	if b.Dx() != m.Width() || b.Dy() != m.Height() {
		t.Fatalf("image bounds %v; want %d×%d", b, m.Width(), m.Height())
	}

	rows := render.Intensity(m)
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if got := img.GrayAt(x, y).Y; got != rows[y][x] {
				t.Errorf("pixel (%d,%d) = %d; want %d", x, y, got, rows[y][x])
			}
		}
	}
}

// TestRenderThresholdRoundTrip verifies that re-thresholding a rendered mask
// at any sensitivity below 255 reproduces the original mask exactly.
func TestRenderThresholdRoundTrip(t *testing.T) {
	m, _ := grid.NewMask(5, 4)
	for _, c := range [][2]int{{0, 0}, {1, 1}, {4, 0}, {2, 3}, {3, 3}, {4, 3}} {
		m.Set(c[0], c[1], true)
	}

	rows := render.Intensity(m)
	f, err := grid.NewField(rows)
	if err != nil {
		t.Fatalf("NewField error: %v", err)
	}

	for _, sensitivity := range []uint8{0, 20, 127, 254} {
		back := threshold.Binarize(f, sensitivity)
		if !back.Equal(m) {
			t.Errorf("round trip at sensitivity %d did not reproduce the mask", sensitivity)
		}
	}
}
