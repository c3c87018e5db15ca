package mandel

import "fmt"

// Bounds describes image dimensions in pixels.
type Bounds struct {
	Width  int
	Height int
}

// Len returns the number of pixels covered by the bounds, which is also the
// buffer length of a Pixmap with these dimensions.
func (b Bounds) Len() int {
	return b.Width * b.Height
}

// Valid reports whether both dimensions are positive.
func (b Bounds) Valid() bool {
	return b.Width > 0 && b.Height > 0
}

// String returns the bounds in "WIDTHxHEIGHT" form, the same form
// ParseBounds accepts.
func (b Bounds) String() string {
	return fmt.Sprintf("%dx%d", b.Width, b.Height)
}
