// Package render turns an occupancy Mask back into pixel data for
// visualization: active cells map to full brightness (255), inactive cells
// to black (0).
//
// The rendered mask is a pure black/white visualization, never a filtered
// copy of the original frame. Two shapes are offered: a [][]uint8 luminance
// grid for further in-memory processing, and an *image.Gray ready for an
// encoder.
//
// Both operations are pure and total.
//
// Complexity: O(W×H) time and memory each.
package render
