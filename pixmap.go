package shimmer

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/gogpu/shimmer/internal/blend"
)

// Pixmap represents a rectangular pixel buffer.
//
// Pixels are stored as premultiplied RGBA, 4 bytes per pixel, in the same
// layout as image.RGBA, so a Pixmap can be handed to any image/draw or
// golang.org/x/image rasterizer through Image.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a new transparent pixmap with the given dimensions.
// Negative dimensions are treated as zero.
func NewPixmap(width, height int) *Pixmap {
	width, height = max(width, 0), max(height, 0)
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw premultiplied pixel data.
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// Resize changes the dimensions and clears the pixmap, reusing the existing
// allocation when it is large enough.
func (p *Pixmap) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	n := width * height * 4
	if cap(p.data) >= n {
		p.data = p.data[:n]
		clear(p.data)
	} else {
		p.data = make([]uint8, n)
	}
	p.width, p.height = width, height
}

// SetPixel sets a single pixel from a straight-alpha color.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	r, g, b, a := c.premul8()
	p.SetPixelPremul(x, y, r, g, b, a)
}

// SetPixelPremul sets a single pixel from premultiplied components.
// Out-of-bounds coordinates are ignored.
func (p *Pixmap) SetPixelPremul(x, y int, r, g, b, a uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = r
	p.data[i+1] = g
	p.data[i+2] = b
	p.data[i+3] = a
}

// GetPixel returns the straight-alpha color of a single pixel.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	return RGBA{
		R: float64(p.data[i+0]) / 255,
		G: float64(p.data[i+1]) / 255,
		B: float64(p.data[i+2]) / 255,
		A: float64(p.data[i+3]) / 255,
	}.Unpremultiply()
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	r, g, b, a := c.premul8()
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = a
	}
}

// FillRect fills the rectangle [x, x+w) × [y, y+h) with c using
// source-over, clipped to the pixmap.
func (p *Pixmap) FillRect(x, y, w, h int, c RGBA) {
	r := image.Rect(x, y, x+w, y+h).Intersect(p.Bounds())
	if r.Empty() {
		return
	}
	pr, pg, pb, pa := c.premul8()
	row := make([]uint8, r.Dx()*4)
	for i := 0; i < len(row); i += 4 {
		row[i], row[i+1], row[i+2], row[i+3] = pr, pg, pb, pa
	}
	for yy := r.Min.Y; yy < r.Max.Y; yy++ {
		off := (yy*p.width + r.Min.X) * 4
		blend.Span(blend.ModeSourceOver, p.data[off:off+len(row)], row)
	}
}

// DrawPixmap composites src onto p with its top-left corner at (x, y)
// using source-over, clipped to p.
func (p *Pixmap) DrawPixmap(src *Pixmap, x, y int) {
	dr := src.Bounds().Add(image.Pt(x, y)).Intersect(p.Bounds())
	if dr.Empty() {
		return
	}
	n := dr.Dx() * 4
	for yy := dr.Min.Y; yy < dr.Max.Y; yy++ {
		doff := (yy*p.width + dr.Min.X) * 4
		soff := ((yy-y)*src.width + (dr.Min.X - x)) * 4
		blend.Span(blend.ModeSourceOver, p.data[doff:doff+n], src.data[soff:soff+n])
	}
}

// Image returns an *image.RGBA sharing the pixmap's memory.
// Drawing into it draws into the pixmap.
func (p *Pixmap) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    p.data,
		Stride: p.width * 4,
		Rect:   image.Rect(0, 0, p.width, p.height),
	}
}

// ToImage returns a copy of the pixmap as an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// Clone returns a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	c := NewPixmap(p.width, p.height)
	copy(c.data, p.data)
	return c
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("shimmer: create %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	if err := png.Encode(f, p.ToImage()); err != nil {
		return fmt.Errorf("shimmer: encode %s: %w", path, err)
	}
	return nil
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.RGBA{}
	}
	i := (y*p.width + x) * 4
	return color.RGBA{R: p.data[i], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}
