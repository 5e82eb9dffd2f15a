// Package skeleton draws loading placeholders: solid boxes, rounded bars and
// circles standing in for images and text while content loads.
//
// A Block is a shimmer.Region, so it can be decorated directly:
//
//	item := skeleton.ListItem(320)
//	d := shimmer.Attach(item, true, shimmer.DefaultConfig())
//
// Shapes are rasterized with anti-aliasing by golang.org/x/image/vector.
package skeleton

import (
	"image"

	"golang.org/x/image/vector"

	"github.com/gogpu/shimmer"
)

// kappa is the cubic Bézier control distance for a quarter circle.
const kappa = 0.5522847498

// Shape is a filled placeholder outline in block-local coordinates.
type Shape interface {
	// Path appends the outline to z, offset by (ox, oy).
	Path(z *vector.Rasterizer, ox, oy float32)
}

// Rect is a box with optionally rounded corners.
type Rect struct {
	X, Y, W, H float32
	Radius     float32
}

// Path implements Shape.
func (r Rect) Path(z *vector.Rasterizer, ox, oy float32) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	x0, y0 := r.X+ox, r.Y+oy
	x1, y1 := x0+r.W, y0+r.H
	rad := min(r.Radius, r.W/2, r.H/2)
	if rad <= 0 {
		z.MoveTo(x0, y0)
		z.LineTo(x1, y0)
		z.LineTo(x1, y1)
		z.LineTo(x0, y1)
		z.ClosePath()
		return
	}

	k := rad * kappa
	z.MoveTo(x0+rad, y0)
	z.LineTo(x1-rad, y0)
	z.CubeTo(x1-rad+k, y0, x1, y0+rad-k, x1, y0+rad)
	z.LineTo(x1, y1-rad)
	z.CubeTo(x1, y1-rad+k, x1-rad+k, y1, x1-rad, y1)
	z.LineTo(x0+rad, y1)
	z.CubeTo(x0+rad-k, y1, x0, y1-rad+k, x0, y1-rad)
	z.LineTo(x0, y0+rad)
	z.CubeTo(x0, y0+rad-k, x0+rad-k, y0, x0+rad, y0)
	z.ClosePath()
}

// Circle is a disc centered at (CX, CY).
type Circle struct {
	CX, CY, R float32
}

// Path implements Shape.
func (c Circle) Path(z *vector.Rasterizer, ox, oy float32) {
	if c.R <= 0 {
		return
	}
	cx, cy, r := c.CX+ox, c.CY+oy, c.R
	k := r * kappa
	z.MoveTo(cx+r, cy)
	z.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	z.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	z.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	z.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	z.ClosePath()
}

// Block is a fixed-size group of shapes filled with one color.
// It implements shimmer.Region.
type Block struct {
	Width, Height int
	Color         shimmer.RGBA
	Shapes        []Shape

	z       *vector.Rasterizer
	scratch *shimmer.Pixmap
}

// NewBlock creates an empty block filled with shimmer.LightGray.
func NewBlock(width, height int, shapes ...Shape) *Block {
	return &Block{
		Width:  width,
		Height: height,
		Color:  shimmer.LightGray,
		Shapes: shapes,
	}
}

// Add appends shapes and returns the block for chaining.
func (b *Block) Add(shapes ...Shape) *Block {
	b.Shapes = append(b.Shapes, shapes...)
	return b
}

// Size implements shimmer.Region.
func (b *Block) Size() (width, height int) {
	return b.Width, b.Height
}

// Draw implements shimmer.Region. The shapes are rasterized into a reused
// scratch pixmap and composited over dst at (x, y), clipped to dst.
func (b *Block) Draw(dst *shimmer.Pixmap, x, y int) {
	if b.Width <= 0 || b.Height <= 0 || len(b.Shapes) == 0 {
		return
	}
	if b.z == nil {
		b.z = vector.NewRasterizer(b.Width, b.Height)
		b.scratch = shimmer.NewPixmap(b.Width, b.Height)
	} else {
		b.z.Reset(b.Width, b.Height)
		b.scratch.Resize(b.Width, b.Height)
	}

	for _, s := range b.Shapes {
		s.Path(b.z, 0, 0)
	}
	img := b.scratch.Image()
	b.z.Draw(img, img.Bounds(), image.NewUniform(b.Color.Color()), image.Point{})
	dst.DrawPixmap(b.scratch, x, y)
}
