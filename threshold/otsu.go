package threshold

import "github.com/nightscan/starfield/grid"

// OtsuLevel computes a global sensitivity for f by Otsu's method: the cutoff
// that maximizes the between-class variance of the luminance histogram.
// The returned level is meant to be fed to Binarize, which classifies
// samples strictly above it as active.
//
// A field with a single luminance value yields that value itself, so
// Binarize at the returned level marks nothing active.
//
// Complexity: O(W×H + 256) time, O(256) memory.
func OtsuLevel(f *grid.Field) uint8 {
	var hist [256]int
	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			hist[f.At(x, y)]++
		}
	}

	total := float64(f.Width() * f.Height())
	var sum float64
	for v, n := range hist {
		sum += float64(v) * float64(n)
	}

	var (
		sumB, weightB float64
		best          int
		bestVariance  = -1.0
	)
	for t := 0; t < 256; t++ {
		weightB += float64(hist[t])
		if weightB == 0 {
			continue
		}
		weightF := total - weightB
		if weightF == 0 {
			break
		}
		sumB += float64(t) * float64(hist[t])
		meanB := sumB / weightB
		meanF := (sum - sumB) / weightF
		variance := weightB * weightF * (meanB - meanF) * (meanB - meanF)
		if variance > bestVariance {
			bestVariance = variance
			best = t
		}
	}

	// Degenerate histogram: every sample shares one value, so no split
	// exists. Return that value; strict-inequality binarization then marks
	// nothing active.
	if bestVariance < 0 {
		for v, n := range hist {
			if n > 0 {
				return uint8(v)
			}
		}
	}

	return uint8(best)
}
