// Package imgio is the file-format boundary of the starfield pipeline: it
// decodes image files into luminance Fields, encodes rendered masks back to
// disk, and derives default output paths.
//
// What:
//
//   - Load reads any registered image format (PNG, JPEG, GIF, BMP, TIFF,
//     WebP), flattens it to single-channel luminance, and returns a
//     grid.Field.
//   - Save encodes an *image.Gray to PNG, JPEG, BMP or TIFF, chosen by the
//     destination extension.
//   - OutputPath derives the default mask filename from the input path:
//     strip the extension, append "-starred.jpg"; an explicit override wins
//     verbatim.
//
// Why:
//
//   - The analysis core consumes and produces only in-memory grids; every
//     filesystem and format concern lives here so the core stays pure.
//
// Errors:
//
//   - ErrNoExtension: an input path without an extension cannot seed the
//     default output name.
//   - ErrUnsupportedFormat: Save was given an extension with no encoder.
//   - Decode and filesystem failures are wrapped and propagated as-is.
package imgio
