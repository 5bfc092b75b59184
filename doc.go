// Package starfield counts stars on night-sky frames: it binarizes a
// luminance grid by a single sensitivity cutoff and enumerates the maximal
// 8-connected clusters of bright cells.
//
// 🌌 What is starfield?
//
//	A small, focused pipeline of pure in-memory stages:
//		• grid:      immutable luminance Field + boolean occupancy Mask
//		• threshold: strict-inequality binarization, optional Otsu auto-level
//		• cluster:   worklist-based connected component counting (Conn4/Conn8)
//		• render:    black/white mask visualization as [][]uint8 or image.Gray
//		• imgio:     the only place that touches files — decode, encode, paths
//
// ✨ Why starfield?
//
//   - One analysis, done carefully – cluster counting with a hard
//     total-coverage postcondition (visited == occupancy, cell for cell)
//   - Predictable memory – explicit traversal frontier, never call-stack
//     recursion, so arbitrarily large blobs cannot overflow
//   - Pure core – thresholding, counting and rendering never perform I/O;
//     every format concern lives in imgio
//
// Pipeline at a glance:
//
//	image file → imgio.Load → grid.Field → threshold.Binarize → grid.Mask
//	           → cluster.Count → star count
//	           → render.Gray → imgio.Save (optional mask output)
//
// The cmd/starcount binary wires the stages together behind flags; see
// examples/ for a minimal in-memory run.
//
//	go get github.com/nightscan/starfield
package starfield
