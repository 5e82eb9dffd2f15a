package shimmer

import (
	"math"
	"testing"
)

// tolerance for floating point comparisons
const gradientEpsilon = 0.01

func colorsEqual(c1, c2 RGBA, epsilon float64) bool {
	return math.Abs(c1.R-c2.R) < epsilon &&
		math.Abs(c1.G-c2.G) < epsilon &&
		math.Abs(c1.B-c2.B) < epsilon &&
		math.Abs(c1.A-c2.A) < epsilon
}

func blackToWhite() *LinearGradient {
	return NewLinearGradient(0, 0, 100, 0,
		ColorStop{Offset: 0, Color: Black},
		ColorStop{Offset: 1, Color: White},
	)
}

func TestLinearGradientColorAt(t *testing.T) {
	g := blackToWhite()
	tests := []struct {
		name string
		x, y float64
		want RGBA
	}{
		{"start", 0, 0, Black},
		{"end", 100, 0, White},
		{"middle", 50, 42, RGB(0.5, 0.5, 0.5)},
		{"before start pads", -30, 0, Black},
		{"after end pads", 250, 0, White},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.ColorAt(tt.x, tt.y); !colorsEqual(got, tt.want, gradientEpsilon) {
				t.Errorf("ColorAt(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestLinearGradientTransform(t *testing.T) {
	g := blackToWhite()
	g.SetTransform(Translate(50, 0))
	if got := g.ColorAt(50, 0); !colorsEqual(got, Black, gradientEpsilon) {
		t.Errorf("translated start = %v, want black", got)
	}
	if got := g.ColorAt(100, 0); !colorsEqual(got, RGB(0.5, 0.5, 0.5), gradientEpsilon) {
		t.Errorf("translated middle = %v, want gray", got)
	}

	// A quarter turn about the origin turns the x gradient into a y gradient.
	g.SetTransform(Rotate(math.Pi / 2))
	if got := g.ColorAt(0, 100); !colorsEqual(got, White, gradientEpsilon) {
		t.Errorf("rotated end = %v, want white", got)
	}

	g.ResetTransform()
	if !g.Transform().IsIdentity() {
		t.Error("ResetTransform left a transform")
	}
}

func TestLinearGradientDegenerate(t *testing.T) {
	empty := NewLinearGradient(0, 0, 10, 0)
	if got := empty.ColorAt(5, 0); got != Transparent {
		t.Errorf("no stops = %v, want transparent", got)
	}

	collapsed := NewLinearGradient(0, 0, 0, 0,
		ColorStop{Offset: 0, Color: Black},
		ColorStop{Offset: 1, Color: White},
	)
	if got := collapsed.ColorAt(5, 5); got != White {
		t.Errorf("zero-length axis = %v, want last stop", got)
	}

	single := NewLinearGradient(0, 0, 10, 0, ColorStop{Offset: 0.5, Color: testGray})
	if got := single.ColorAt(9, 0); got != testGray {
		t.Errorf("single stop = %v, want gray", got)
	}

	coincident := NewLinearGradient(0, 0, 10, 0,
		ColorStop{Offset: 0.5, Color: Black},
		ColorStop{Offset: 0.5, Color: White},
	)
	if got := coincident.ColorAt(4, 0); got != Black {
		t.Errorf("before a hard edge = %v, want black", got)
	}
	if got := coincident.ColorAt(6, 0); got != White {
		t.Errorf("after a hard edge = %v, want white", got)
	}
}

func TestLinearGradientInterpolation(t *testing.T) {
	g := blackToWhite()
	srgb := g.ColorAt(50, 0)

	g.Interpolation = InterpolationLinear
	lin := g.ColorAt(50, 0)
	if lin.R <= srgb.R+0.1 {
		t.Errorf("linear-light midpoint %v should be brighter than sRGB %v", lin.R, srgb.R)
	}
	if !near(lin.A, 1, 1e-9) {
		t.Errorf("alpha = %v, want 1", lin.A)
	}
}
