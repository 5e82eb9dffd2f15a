// Package shimmer provides an animated loading-placeholder effect for 2D
// raster content.
//
// # Overview
//
// A shimmer is a soft diagonal highlight band that sweeps across content to
// signal that it is still loading. The band is composited with source-in
// semantics, so it only appears where the content has coverage: placeholder
// boxes, bars and circles light up while the background behind them stays
// untouched.
//
// # Quick Start
//
//	import "github.com/gogpu/shimmer"
//
//	card := shimmer.RegionFunc{Width: 300, Height: 60, DrawFunc: drawCard}
//	d := shimmer.Attach(card, true, shimmer.DefaultConfig())
//
//	screen := shimmer.NewPixmap(320, 80)
//	for range frames {
//	    d.Measure()
//	    d.Tick(16 * time.Millisecond)
//	    screen.Clear(shimmer.White)
//	    d.Paint(screen, 10, 10)
//	}
//
// # Architecture
//
//   - Config: immutable parameters (colors, band widths, direction, angle, timing)
//   - Effect: per-region engine (geometry cache, gradient brush, compositing)
//   - Animator: the clock, a repeating linear tween built on gween
//   - Decorated: Attach's result, tying a Region to an Effect and an Animator
//   - Pixmap, LinearGradient, Matrix: the raster substrate
//
// Package skeleton supplies ready-made Regions: placeholder shapes
// rasterized with golang.org/x/image/vector, text labels and list-row
// layouts. WithWorkers spreads compositing of tall layers over a shared
// worker pool.
//
// The Effect holds no timing logic. It is a pure function of size, config,
// progress and visibility, so tests drive it by setting progress directly.
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down. Angles in
// Config are degrees; positive angles turn the band clockwise on screen.
//
// # Errors
//
// Nothing in the rendering path returns an error. Out-of-range values are
// clamped and degenerate sizes render as a no-op, so a bad config can never
// stop content from being drawn.
package shimmer

// Version is the current version of the library.
const Version = "0.1.0"
