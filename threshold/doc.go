// Package threshold converts a luminance Field into a boolean occupancy
// Mask using a single global sensitivity cutoff.
//
// What:
//
//   - Binarize marks a cell active iff its luminance STRICTLY exceeds the
//     sensitivity; a sample exactly equal to the cutoff stays inactive.
//   - OtsuLevel derives a sensitivity automatically from the field's
//     histogram (maximum between-class variance), for callers that do not
//     want to hand-tune the cutoff.
//
// Why:
//
//   - Star counting needs a crisp active/background split before component
//     analysis; a single global cutoff keeps the classification trivially
//     reproducible.
//
// Both operations are pure: they never mutate the input field and have no
// failure modes beyond allocating the output.
//
// Complexity:
//
//   - Binarize:  O(W×H) time, O(W×H) memory for the mask.
//   - OtsuLevel: O(W×H + 256) time, O(256) memory.
package threshold
