package shimmer

import (
	"sort"

	"github.com/gogpu/shimmer/internal/color"
)

// Interpolation selects the color space gradient stops are blended in.
type Interpolation int

const (
	// InterpolationSRGB blends straight sRGB components, as platform
	// gradient shaders do. This is the default.
	InterpolationSRGB Interpolation = iota
	// InterpolationLinear blends in linear light.
	InterpolationLinear
)

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// LinearGradient is a linear color transition between two points with a
// local transform, the way a platform shader carries a local matrix.
//
// Colors are sampled in device space: a device point is mapped through the
// inverse of Transform and projected onto the Start→End axis. Positions
// before the first stop take the first color, positions after the last stop
// take the last color.
//
// A gradient is built once and reused across frames; only SetTransform is
// expected to run per frame.
type LinearGradient struct {
	Start         Point
	End           Point
	Stops         []ColorStop
	Interpolation Interpolation

	transform Matrix
	inverse   Matrix
}

// NewLinearGradient creates a new linear gradient from (x0, y0) to (x1, y1).
// Stops must be sorted by offset.
func NewLinearGradient(x0, y0, x1, y1 float64, stops ...ColorStop) *LinearGradient {
	return &LinearGradient{
		Start:     Point{X: x0, Y: y0},
		End:       Point{X: x1, Y: y1},
		Stops:     stops,
		transform: Identity(),
		inverse:   Identity(),
	}
}

// SetTransform replaces the local transform.
func (g *LinearGradient) SetTransform(m Matrix) {
	g.transform = m
	g.inverse = m.Invert()
}

// ResetTransform restores the identity transform.
func (g *LinearGradient) ResetTransform() {
	g.SetTransform(Identity())
}

// Transform returns the local transform.
func (g *LinearGradient) Transform() Matrix {
	return g.transform
}

// ColorAt returns the straight-alpha color at the device point (x, y).
func (g *LinearGradient) ColorAt(x, y float64) RGBA {
	if len(g.Stops) == 0 {
		return Transparent
	}

	axis := g.End.Sub(g.Start)
	lengthSq := axis.Dot(axis)
	if lengthSq == 0 {
		// A collapsed axis renders the last stop everywhere.
		return g.Stops[len(g.Stops)-1].Color
	}

	p := Pt(x, y)
	if !g.transform.IsIdentity() {
		p = g.inverse.TransformPoint(p)
	}
	p = p.Sub(g.Start)
	return g.colorAtOffset(p.Dot(axis) / lengthSq)
}

// colorAtOffset returns the interpolated color at position t on the axis.
func (g *LinearGradient) colorAtOffset(t float64) RGBA {
	stops := g.Stops
	if len(stops) == 1 {
		return stops[0].Color
	}

	t = clamp01(t)

	idx := sort.Search(len(stops), func(i int) bool {
		return stops[i].Offset >= t
	})

	if idx == 0 {
		return stops[0].Color
	}
	if idx >= len(stops) {
		return stops[len(stops)-1].Color
	}

	// stops[idx-1].Offset < t <= stops[idx].Offset, so the span is never empty.
	s1 := stops[idx-1]
	s2 := stops[idx]
	localT := (t - s1.Offset) / (s2.Offset - s1.Offset)
	return g.mix(s1.Color, s2.Color, localT)
}

func (g *LinearGradient) mix(c1, c2 RGBA, t float64) RGBA {
	if g.Interpolation == InterpolationLinear {
		r, gr, b, a := color.MixLinear(c1.R, c1.G, c1.B, c1.A, c2.R, c2.G, c2.B, c2.A, t)
		return RGBA{R: r, G: gr, B: b, A: a}
	}
	return c1.Lerp(c2, t)
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
