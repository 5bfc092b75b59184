// Package cluster counts maximal connected regions of active cells in an
// occupancy Mask.
//
// What:
//
//   - Count scans the mask in row-major order and, for each active cell not
//     yet visited, runs one iterative breadth-first traversal over the
//     configured connectivity, incrementing the cluster total once per
//     traversal start.
//   - Components returns the same regions as explicit row-major cell-index
//     slices, for callers that need membership rather than a bare count.
//   - Functional options select Conn4/Conn8 adjacency (default Conn8, the
//     star-counting semantics: any of the 8 surrounding cells, pure
//     diagonals included, connects) and register an OnCluster hook fired
//     once per discovered cluster.
//
// Why:
//
//   - Counting point sources on a binarized sky frame reduces to connected
//     component analysis; diagonal adjacency keeps a star that straddles a
//     pixel corner from being counted twice.
//
// Coverage invariant:
//
//	After the scan, the visited set equals the active set cell for cell:
//	every active cell was reached by exactly one traversal and no inactive
//	cell was ever marked. A violation indicates a defect in neighbor
//	enumeration or bounds handling, never bad input, and panics.
//
// Traversal is worklist-based, not recursive, so memory use is bounded by
// the mask size regardless of cluster shape.
//
// Errors:
//
//   - ErrNilMask: the mask pointer is nil.
//   - ErrOptionViolation: an invalid Option was supplied.
//
// Complexity:
//
//   - Count / Components: O(W×H×d) time (d = 4 or 8), O(W×H) memory.
package cluster
