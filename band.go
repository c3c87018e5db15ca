package mandel

import "fmt"

// Band is one contiguous horizontal slice of a render target.
//
// Pix is a view into the full pixmap's backing storage covering exactly the
// band's rows; bands produced by splitBands never overlap, so each one can
// be mutated by its own render task without synchronization. Viewport is the
// sub-rectangle of the full viewport that the band covers.
type Band struct {
	// Top is the first full-image row covered by the band.
	Top int

	// Bounds holds the band dimensions: the full image width and the
	// band's own row count.
	Bounds Bounds

	// Viewport is the band's slice of the full viewport.
	Viewport Viewport

	// Pix holds the band's rows of the shared pixel buffer.
	Pix []uint8
}

// splitBands partitions p into at most workers horizontal bands of
// ceil(height/workers) rows each, the last band possibly shorter. Every row
// lands in exactly one band and no band is empty, so for heights smaller
// than the worker count fewer bands than workers are returned.
//
// Each band's viewport corners are computed by mapping its pixel corners
// through the full-image geometry. Adjacent bands therefore share their
// boundary row's coordinates exactly and the bands compose back into vp
// with no seams or drift.
func splitBands(p *Pixmap, vp Viewport, workers int) []Band {
	bounds := p.Size()
	rowsPerBand := (bounds.Height + workers - 1) / workers

	bands := make([]Band, 0, workers)
	for top := 0; top < bounds.Height; top += rowsPerBand {
		h := min(rowsPerBand, bounds.Height-top)
		bands = append(bands, Band{
			Top:    top,
			Bounds: Bounds{Width: bounds.Width, Height: h},
			Viewport: Viewport{
				UpperLeft:  vp.PixelToPoint(bounds, 0, top),
				LowerRight: vp.PixelToPoint(bounds, bounds.Width, top+h),
			},
			Pix: p.rows(top, h),
		})
	}
	return bands
}

// verifyDisjoint panics unless the bands tile the image rows exactly: every
// row in exactly one band, in order, with no gaps and no overlap, and every
// band's buffer sized to its bounds. A violation is a bug in the
// partitioner, not a recoverable condition, and rendering through
// overlapping views would be a data race.
func verifyDisjoint(bands []Band, bounds Bounds) {
	next := 0
	for i, b := range bands {
		if b.Top != next {
			panic(fmt.Sprintf("mandel: band %d starts at row %d, want %d", i, b.Top, next))
		}
		if b.Bounds.Height <= 0 || b.Bounds.Width != bounds.Width {
			panic(fmt.Sprintf("mandel: band %d has bounds %v within image %v", i, b.Bounds, bounds))
		}
		if len(b.Pix) != b.Bounds.Len() {
			panic(fmt.Sprintf("mandel: band %d holds %d pixels, bounds %v need %d", i, len(b.Pix), b.Bounds, b.Bounds.Len()))
		}
		next = b.Top + b.Bounds.Height
	}
	if next != bounds.Height {
		panic(fmt.Sprintf("mandel: bands cover %d rows, image has %d", next, bounds.Height))
	}
}
