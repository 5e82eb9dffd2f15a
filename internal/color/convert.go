// Package color provides the sRGB transfer functions used when a shimmer
// gradient interpolates in linear light.
package color

import "math"

// SRGBToLinear converts an sRGB component to linear (EOTF).
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
// Input and output are in range [0,1].
func SRGBToLinear(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// LinearToSRGB converts a linear component to sRGB (OETF).
// Formula: if l <= 0.0031308: l*12.92; else: 1.055*pow(l, 1/2.4)-0.055
// Input and output are in range [0,1].
func LinearToSRGB(l float64) float64 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1.0/2.4) - 0.055
}

// MixLinear interpolates two straight-alpha sRGB colors in linear light.
// Alpha is never gamma-encoded and is interpolated directly.
func MixLinear(r1, g1, b1, a1, r2, g2, b2, a2, t float64) (r, g, b, a float64) {
	lerp := func(x, y float64) float64 {
		lx, ly := SRGBToLinear(x), SRGBToLinear(y)
		return LinearToSRGB(lx + t*(ly-lx))
	}
	return lerp(r1, r2), lerp(g1, g2), lerp(b1, b2), a1 + t*(a2-a1)
}
