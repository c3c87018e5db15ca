package mandel

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// Pixmap is a rectangular grayscale pixel buffer.
//
// Pixels are stored as one intensity byte each, row-major with a stride of
// Width, so the byte for (x, y) lives at Data()[y*Width+x]. A Pixmap also
// implements image.Image, which lets the standard encoders consume it
// directly.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // one byte per pixel, row-major
}

// NewPixmap creates a zeroed (all black) pixmap with the given dimensions.
func NewPixmap(bounds Bounds) *Pixmap {
	return &Pixmap{
		width:  bounds.Width,
		height: bounds.Height,
		data:   make([]uint8, bounds.Len()),
	}
}

// Width returns the width of the pixmap in pixels.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap in pixels.
func (p *Pixmap) Height() int {
	return p.height
}

// Size returns the pixmap dimensions as Bounds.
func (p *Pixmap) Size() Bounds {
	return Bounds{Width: p.width, Height: p.height}
}

// Data returns the raw pixel data. The slice aliases the pixmap's backing
// storage; writes through it are visible to all views of the pixmap.
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the intensity of a single pixel. Out-of-range coordinates
// are ignored.
func (p *Pixmap) SetPixel(x, y int, v uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	p.data[y*p.width+x] = v
}

// GetPixel returns the intensity of a single pixel, or 0 for out-of-range
// coordinates.
func (p *Pixmap) GetPixel(x, y int) uint8 {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0
	}
	return p.data[y*p.width+x]
}

// Clear fills the entire pixmap with one intensity.
func (p *Pixmap) Clear(v uint8) {
	for i := range p.data {
		p.data[i] = v
	}
}

// rows returns the sub-slice holding n consecutive rows starting at top.
// The view aliases the pixmap's storage; views over disjoint row ranges
// never overlap, which is what makes unsynchronized band rendering safe.
func (p *Pixmap) rows(top, n int) []uint8 {
	return p.data[top*p.width : (top+n)*p.width]
}

// ToImage copies the pixmap into a standard *image.Gray.
func (p *Pixmap) ToImage() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image, converting colors to grayscale.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	pm := NewPixmap(Bounds{Width: bounds.Dx(), Height: bounds.Dy()})

	for y := 0; y < pm.height; y++ {
		for x := 0; x < pm.width; x++ {
			c := color.GrayModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y))
			pm.data[y*pm.width+x] = c.(color.Gray).Y
		}
	}

	return pm
}

// SavePNG saves the pixmap to a PNG file regardless of the path's
// extension. See WriteFile for extension-driven format selection.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, p.ToImage()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return color.Gray{Y: p.GetPixel(x, y)}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.GrayModel
}
