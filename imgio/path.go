package imgio

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Sentinel errors for the format boundary.
var (
	// ErrNoExtension indicates the input path carries no file extension to
	// seed the default output name.
	ErrNoExtension = errors.New("imgio: input path has no file extension")

	// ErrUnsupportedFormat indicates Save has no encoder for the requested
	// extension.
	ErrUnsupportedFormat = errors.New("imgio: unsupported output format")
)

// outputSuffix is appended to the input's base name when deriving the
// default mask path.
const outputSuffix = "-starred.jpg"

// OutputPath derives the destination for a rendered mask. A non-empty
// override is returned verbatim. Otherwise the input path's extension is
// stripped and "-starred.jpg" appended; an input without an extension is
// rejected with ErrNoExtension.
func OutputPath(input, override string) (string, error) {
	if override != "" {
		return override, nil
	}
	ext := filepath.Ext(input)
	if ext == "" {
		return "", fmt.Errorf("%w: %q", ErrNoExtension, input)
	}

	return strings.TrimSuffix(input, ext) + outputSuffix, nil
}
