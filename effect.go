package shimmer

import (
	"fmt"
	"log/slog"
	"math"
	"sync"

	"github.com/gogpu/shimmer/internal/blend"
	"github.com/gogpu/shimmer/internal/parallel"
)

// minBandRows is the smallest row band worth handing to another goroutine.
const minBandRows = 32

var (
	sharedPoolOnce sync.Once
	sharedPool     *parallel.WorkerPool
)

func workerPool() *parallel.WorkerPool {
	sharedPoolOnce.Do(func() {
		sharedPool = parallel.NewWorkerPool(0)
	})
	return sharedPool
}

// stopEpsilon keeps the fully highlighted band from collapsing to zero
// width when Intensity is 0.
const stopEpsilon = 0.001

// State is the visible state of an Effect.
type State int

const (
	// Idle means content passes through unmodified.
	Idle State = iota
	// Sweeping means the highlight band is composited every frame.
	Sweeping
)

// String returns the state name.
func (s State) String() string {
	if s == Sweeping {
		return "sweeping"
	}
	return "idle"
}

// Effect is the per-region shimmer engine.
//
// An Effect is a pure function of (size, config, progress, visible): it keeps
// no clock of its own. The host measures the region with Measure, pushes the
// animation phase with SetProgress and composites each frame with Composite.
//
// The gradient brush is built once per geometry and reused; per frame only
// its transform changes.
//
// Effect is not safe for concurrent use. Each decorated region owns one.
type Effect struct {
	cfg      Config
	visible  bool
	progress float64

	width, height float64

	translateWidth  float64
	translateHeight float64
	stops           [4]float64
	axisStart       Point
	axisEnd         Point
	brush           *LinearGradient
	interpolation   Interpolation
	workers         int
}

// NewEffect creates an idle effect for cfg. The geometry starts at a zero
// size until the first Measure.
func NewEffect(cfg Config, opts ...Option) *Effect {
	o := applyOptions(opts)
	e := &Effect{
		cfg:           cfg,
		interpolation: o.interpolation,
		workers:       o.workers,
		stops:         ColorStops(cfg.Intensity, cfg.DropOff),
	}
	e.updateGeometry()
	return e
}

// ColorStops returns the four gradient stop offsets for the given band
// widths. Every offset is clamped to [0, 1] and the result is
// non-decreasing for any input.
func ColorStops(intensity, dropOff float64) [4]float64 {
	intensity, dropOff = finiteOr0(intensity), finiteOr0(dropOff)
	stops := [4]float64{
		clamp01((1 - intensity - dropOff) / 2),
		clamp01((1 - intensity - stopEpsilon) / 2),
		clamp01((1 + intensity + stopEpsilon) / 2),
		clamp01((1 + intensity + dropOff) / 2),
	}
	// Out-of-order offsets are raised to their predecessor, like a
	// platform gradient shader does.
	for i := 1; i < len(stops); i++ {
		stops[i] = math.Max(stops[i], stops[i-1])
	}
	return stops
}

// SweepOffset returns the band translation for progress along direction.
// At progress 0 the band sits one full travel distance before the region,
// at 1 one full travel distance past it.
func SweepOffset(direction Direction, translateWidth, translateHeight, progress float64) (dx, dy float64) {
	switch direction {
	case RightToLeft:
		return lerp(translateWidth, -translateWidth, progress), 0
	case TopToBottom:
		return 0, lerp(-translateHeight, translateHeight, progress)
	case BottomToTop:
		return 0, lerp(translateHeight, -translateHeight, progress)
	default:
		return lerp(-translateWidth, translateWidth, progress), 0
	}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func finiteOr0(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return x
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Measure records the region size. Geometry is rebuilt only when the size
// actually changed. Negative or non-finite sizes are treated as zero.
func (e *Effect) Measure(width, height float64) {
	width, height = math.Max(finiteOr0(width), 0), math.Max(finiteOr0(height), 0)
	if width == e.width && height == e.height {
		return
	}
	e.width, e.height = width, height
	e.updateGeometry()
}

// SetConfig replaces the config. Only the caches affected by the changed
// fields are rebuilt; a value-identical config is a no-op.
func (e *Effect) SetConfig(cfg Config) {
	if cfg == e.cfg {
		return
	}
	old := e.cfg
	e.cfg = cfg
	Logger().Debug("shimmer: config replaced", slog.String("config", cfg.String()))

	if old.Intensity != cfg.Intensity || old.DropOff != cfg.DropOff {
		e.stops = ColorStops(cfg.Intensity, cfg.DropOff)
	}
	if old.Angle != cfg.Angle || old.Direction.IsHorizontal() != cfg.Direction.IsHorizontal() {
		e.updateGeometry()
		return
	}
	e.brush.Stops = e.colorStops()
}

// updateGeometry recomputes the travel extents and the gradient axis and
// rebuilds the brush.
func (e *Effect) updateGeometry() {
	angleTan := finiteOr0(math.Tan(radians(e.cfg.Angle)))
	e.translateWidth = e.width + angleTan*e.height
	e.translateHeight = e.height + angleTan*e.width

	e.axisStart = Pt(0, 0)
	if e.cfg.Direction.IsHorizontal() {
		e.axisEnd = Pt(e.width, 0)
	} else {
		e.axisEnd = Pt(0, e.height)
	}

	e.brush = NewLinearGradient(e.axisStart.X, e.axisStart.Y, e.axisEnd.X, e.axisEnd.Y, e.colorStops()...)
	e.brush.Interpolation = e.interpolation

	Logger().Debug("shimmer: geometry updated",
		slog.Float64("width", e.width),
		slog.Float64("height", e.height),
		slog.Float64("translateWidth", e.translateWidth),
		slog.Float64("translateHeight", e.translateHeight))
}

func (e *Effect) colorStops() []ColorStop {
	colors := e.cfg.colors()
	stops := make([]ColorStop, len(colors))
	for i := range colors {
		stops[i] = ColorStop{Offset: e.stops[i], Color: colors[i]}
	}
	return stops
}

// Config returns the current config.
func (e *Effect) Config() Config { return e.cfg }

// Visible reports whether the sweep is active.
func (e *Effect) Visible() bool { return e.visible }

// SetVisible switches between Idle and Sweeping.
func (e *Effect) SetVisible(v bool) {
	if v != e.visible {
		Logger().Debug("shimmer: visibility changed", slog.Bool("visible", v))
	}
	e.visible = v
}

// State returns Sweeping when visible, Idle otherwise.
func (e *Effect) State() State {
	if e.visible {
		return Sweeping
	}
	return Idle
}

// Progress returns the animation phase in [0, 1].
func (e *Effect) Progress() float64 { return e.progress }

// SetProgress sets the animation phase, clamped to [0, 1]. NaN becomes 0.
func (e *Effect) SetProgress(p float64) {
	if math.IsNaN(p) {
		p = 0
	}
	e.progress = clamp01(p)
}

// Size returns the last measured size.
func (e *Effect) Size() (width, height float64) { return e.width, e.height }

// TranslateSize returns the sweep travel distances, which include the extra
// run a rotated band needs to clear the region corners.
func (e *Effect) TranslateSize() (width, height float64) {
	return e.translateWidth, e.translateHeight
}

// Stops returns the cached color stop offsets.
func (e *Effect) Stops() [4]float64 { return e.stops }

// Axis returns the gradient axis endpoints.
func (e *Effect) Axis() (start, end Point) { return e.axisStart, e.axisEnd }

// Brush returns the cached gradient. Composite overwrites its transform.
func (e *Effect) Brush() *LinearGradient { return e.brush }

// Offset returns the band translation for the current progress.
func (e *Effect) Offset() (dx, dy float64) {
	return SweepOffset(e.cfg.Direction, e.translateWidth, e.translateHeight, e.progress)
}

// Transform returns the brush transform for the current frame: a rotation
// by the config angle about the region center, followed by the sweep
// translation.
func (e *Effect) Transform() Matrix {
	dx, dy := e.Offset()
	rot := RotateAbout(radians(finiteOr0(e.cfg.Angle)), e.width/2, e.height/2)
	return Translate(dx, dy).Multiply(rot)
}

// Composite paints the band over layer, which must already hold the
// rendered content. Every pixel becomes the gradient color scaled by the
// content's coverage (source-in), so the band only shows inside the
// content silhouette. Transparent pixels stay transparent.
//
// The brush carries the frame transform only for the duration of the call.
// When the effect is not visible, layer is left untouched.
func (e *Effect) Composite(layer *Pixmap) {
	if !e.visible || layer == nil {
		return
	}
	e.brush.SetTransform(e.Transform())
	defer e.brush.ResetTransform()

	var pool *parallel.WorkerPool
	if e.workers > 1 {
		pool = workerPool()
	}
	parallel.Rows(pool, layer.Height(), e.workers, minBandRows, func(y0, y1 int) {
		e.compositeRows(layer, y0, y1)
	})
}

// compositeRows applies the band to rows [y0, y1). The brush is only read,
// so disjoint row ranges may run concurrently.
func (e *Effect) compositeRows(layer *Pixmap, y0, y1 int) {
	srcIn := blend.GetFunc(blend.ModeSourceIn)
	data := layer.Data()
	w := layer.Width()
	for y := y0; y < y1; y++ {
		row := data[y*w*4 : (y+1)*w*4]
		for x := 0; x < w; x++ {
			i := x * 4
			da := row[i+3]
			if da == 0 {
				continue
			}
			r, g, b, a := e.brush.ColorAt(float64(x)+0.5, float64(y)+0.5).premul8()
			row[i], row[i+1], row[i+2], row[i+3] = srcIn(r, g, b, a, row[i], row[i+1], row[i+2], da)
		}
	}
}

// String summarises the effect for logs.
func (e *Effect) String() string {
	return fmt.Sprintf("shimmer.Effect{state=%v progress=%.3f size=%gx%g stops=%v %v}",
		e.State(), e.progress, e.width, e.height, e.stops, e.cfg)
}
