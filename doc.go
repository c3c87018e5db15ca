// Package mandel renders the Mandelbrot set into grayscale pixel buffers.
//
// # Overview
//
// mandel plots the escape time of the quadratic recurrence z = z*z + c for a
// rectangular viewport of the complex plane, one intensity byte per pixel.
// Rendering is parallelized by slicing the image into horizontal bands; each
// band is a disjoint view into one shared buffer, so render tasks never
// contend and never lock.
//
// # Quick Start
//
//	import "github.com/gogpu/mandel"
//
//	vp := mandel.Viewport{
//		UpperLeft:  complex(-1.20, 0.35),
//		LowerRight: complex(-1.0, 0.20),
//	}
//	pm, err := mandel.Render(mandel.Bounds{Width: 1000, Height: 750}, vp)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := pm.WriteFile("mandel.png"); err != nil {
//		log.Fatal(err)
//	}
//
// # Coordinate System
//
// Pixel space uses standard image coordinates: origin at the top-left, x
// increasing right, y increasing down. A Viewport maps that rectangle onto
// the complex plane, where the real axis increases rightward and the
// imaginary axis decreases downward; UpperLeft is therefore the corner with
// the smallest real part and the largest imaginary part.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Render, Bounds, Viewport, Pixmap, EscapeTime
//   - Output: Encode and WriteFile with the format chosen by file extension
//   - Internal: parallel (bounded task group for band rendering)
//
// The render pipeline is deterministic: the same bounds, viewport and
// options produce byte-identical pixels for any worker count.
package mandel

// Version is the current version of the library.
const Version = "0.1.0"
