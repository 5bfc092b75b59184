package imgio

import (
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	// Register decoders for the formats Load accepts.
	_ "image/gif"

	_ "golang.org/x/image/webp"

	"github.com/nightscan/starfield/grid"
)

// Load decodes the image at path and flattens it to a single-channel
// luminance Field. Any format registered with image.Decode is accepted.
// Complexity: O(W×H) past decoding.
func Load(path string) (*grid.Field, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imgio: open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("imgio: decode %s: %w", path, err)
	}

	// Flatten to 8-bit luminance; draw applies the standard gray conversion.
	b := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(gray, gray.Bounds(), img, b.Min, draw.Src)

	rows := make([][]uint8, gray.Rect.Dy())
	for y := range rows {
		start := y * gray.Stride
		rows[y] = gray.Pix[start : start+gray.Rect.Dx()]
	}

	return grid.NewField(rows)
}

// Save encodes img to path, choosing the encoder from the extension:
// .png, .jpg/.jpeg, .bmp, or .tif/.tiff. Returns ErrUnsupportedFormat for
// anything else.
func Save(path string, img *image.Gray) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imgio: create %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		err = png.Encode(f, img)
	case ".jpg", ".jpeg":
		err = jpeg.Encode(f, img, nil)
	case ".bmp":
		err = bmp.Encode(f, img)
	case ".tif", ".tiff":
		err = tiff.Encode(f, img, nil)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if err != nil {
		return fmt.Errorf("imgio: encode %s: %w", path, err)
	}

	return nil
}
