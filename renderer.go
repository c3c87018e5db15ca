package mandel

import (
	"errors"
	"fmt"
	"image"
	"runtime"
	"time"

	"golang.org/x/image/draw"

	"github.com/gogpu/mandel/internal/parallel"
)

var (
	// ErrInvalidBounds is returned by Render for bounds with a zero or
	// negative dimension.
	ErrInvalidBounds = errors.New("mandel: bounds must be positive in both dimensions")

	// ErrInvalidViewport is returned by Render when the viewport corners do
	// not satisfy the image-space convention (see Viewport).
	ErrInvalidViewport = errors.New("mandel: viewport upper left must lie left of and above lower right")
)

// Render plots the Mandelbrot set for the viewport vp into a new Pixmap of
// the given bounds.
//
// The image is partitioned into horizontal bands, one render task per band,
// each task exclusively owning its disjoint slice of the pixel buffer. All
// tasks are joined before Render returns. A failing task fails the whole
// render: the buffer is discarded and an error returned, never a partially
// rendered pixmap.
//
// Output is deterministic: identical inputs produce byte-identical pixels
// regardless of the worker count.
func Render(bounds Bounds, vp Viewport, opts ...Option) (*Pixmap, error) {
	if !bounds.Valid() {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidBounds, bounds)
	}
	if !vp.Valid() {
		return nil, fmt.Errorf("%w: got %+v", ErrInvalidViewport, vp)
	}

	o := defaultRenderOptions()
	for _, opt := range opts {
		opt(&o)
	}
	workers := o.workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	target := bounds
	if o.oversample > 1 {
		target = Bounds{Width: bounds.Width * o.oversample, Height: bounds.Height * o.oversample}
	}

	start := time.Now()
	pm := NewPixmap(target)
	bands := splitBands(pm, vp, workers)
	verifyDisjoint(bands, target)

	tasks := make([]func(), len(bands))
	for i, b := range bands {
		b := b
		Logger().Debug("render band",
			"band", i, "top", b.Top, "rows", b.Bounds.Height)
		tasks[i] = func() {
			renderBand(b.Pix, b.Bounds, b.Viewport, o.limit)
		}
	}
	if err := parallel.Run(workers, tasks); err != nil {
		return nil, fmt.Errorf("mandel: render: %w", err)
	}

	if o.oversample > 1 {
		pm = downsample(pm, bounds)
	}
	Logger().Info("rendered",
		"bounds", bounds.String(), "workers", workers, "bands", len(bands),
		"limit", o.limit, "oversample", o.oversample, "elapsed", time.Since(start))
	return pm, nil
}

// renderBand fills one band of the output: for every pixel it maps the
// coordinate through the band's viewport, measures the escape time and
// writes the shaded intensity. The buffer must hold exactly the band's
// pixels; a mismatch is a partitioning bug and panics.
func renderBand(pix []uint8, bounds Bounds, vp Viewport, limit int) {
	if len(pix) != bounds.Len() {
		panic(fmt.Sprintf("mandel: band buffer holds %d pixels, bounds %v need %d", len(pix), bounds, bounds.Len()))
	}

	for row := 0; row < bounds.Height; row++ {
		for col := 0; col < bounds.Width; col++ {
			n, escaped := EscapeTime(vp.PixelToPoint(bounds, col, row), limit)
			pix[row*bounds.Width+col] = Shade(n, escaped)
		}
	}
}

// downsample scales src to the requested bounds with a Catmull-Rom kernel,
// averaging the oversampled escape shades into smoother edges.
func downsample(src *Pixmap, bounds Bounds) *Pixmap {
	dst := image.NewGray(image.Rect(0, 0, bounds.Width, bounds.Height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src.ToImage(), src.Bounds(), draw.Src, nil)

	pm := NewPixmap(bounds)
	copy(pm.data, dst.Pix)
	return pm
}
