package mandel

import (
	"fmt"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// jpegQuality is the encoder quality used for JPEG output.
const jpegQuality = 90

// Encode writes the pixmap to w as a single-channel 8-bit image in the
// named format. Supported formats are "png", "jpeg", "jpg", "bmp", "tiff"
// and "tif"; anything else is an error.
func (p *Pixmap) Encode(w io.Writer, format string) error {
	img := p.ToImage()
	switch strings.ToLower(format) {
	case "png":
		return png.Encode(w, img)
	case "jpeg", "jpg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
	case "bmp":
		return bmp.Encode(w, img)
	case "tiff", "tif":
		return tiff.Encode(w, img, nil)
	default:
		return fmt.Errorf("mandel: unsupported image format %q", format)
	}
}

// WriteFile encodes the pixmap to a file at path, choosing the format from
// the path's extension. Unrecognized or missing extensions fall back to PNG
// with a warning through the package logger, so any output path produces a
// valid image.
func (p *Pixmap) WriteFile(path string) error {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch format {
	case "png", "jpeg", "jpg", "bmp", "tiff", "tif":
	default:
		Logger().Warn("unrecognized output extension, encoding PNG", "path", path)
		format = "png"
	}

	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := p.Encode(f, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
