package mandel

// Viewport is the rectangular region of the complex plane mapped onto the
// output image.
//
// The corners follow the image-space convention rather than the mathematical
// one: the real axis increases rightward and the imaginary axis decreases
// downward. A valid viewport therefore has real(UpperLeft) < real(LowerRight)
// and imag(UpperLeft) > imag(LowerRight).
type Viewport struct {
	UpperLeft  complex128
	LowerRight complex128
}

// Width returns the viewport's extent along the real axis.
func (v Viewport) Width() float64 {
	return real(v.LowerRight) - real(v.UpperLeft)
}

// Height returns the viewport's extent along the imaginary axis.
func (v Viewport) Height() float64 {
	return imag(v.UpperLeft) - imag(v.LowerRight)
}

// Valid reports whether the corners satisfy the image-space convention.
func (v Viewport) Valid() bool {
	return v.Width() > 0 && v.Height() > 0
}

// PixelToPoint maps the pixel at (col, row) within bounds to its point on
// the complex plane. The mapping is affine: (0, 0) yields UpperLeft and
// (bounds.Width, bounds.Height) yields LowerRight.
//
// PixelToPoint is pure and performs no range checks; callers pass pixel
// coordinates inside bounds by construction, and zero-sized bounds are
// rejected at the Render boundary before any mapping happens.
func (v Viewport) PixelToPoint(bounds Bounds, col, row int) complex128 {
	return complex(
		real(v.UpperLeft)+float64(col)*v.Width()/float64(bounds.Width),
		imag(v.UpperLeft)-float64(row)*v.Height()/float64(bounds.Height),
	)
}
