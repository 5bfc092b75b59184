// Package grid provides the 2D raster primitives shared by the starfield
// pipeline: an immutable luminance Field and a boolean occupancy Mask.
//
// What:
//
//   - Field wraps a rectangular [][]uint8 of luminance samples (0–255),
//     deep-copied on construction so callers cannot mutate it afterwards.
//   - Mask is a same-shaped boolean grid backed by a flat row-major slice,
//     with index/coordinate conversion helpers.
//   - Connectivity selects 4- or 8-neighbor adjacency and exposes the
//     precomputed offset table used by traversals.
//
// Why:
//
//   - Thresholding, cluster counting and mask rendering all operate on the
//     same two shapes; keeping them here avoids each stage re-validating
//     rectangularity and bounds.
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//
// Complexity:
//
//   - NewField / NewMask: O(W×H) time and memory.
//   - All accessors: O(1).
package grid
