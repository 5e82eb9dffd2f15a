package shimmer

import "time"

// Region is host content the effect can decorate: anything that can report
// its size and draw itself into a pixmap with its top-left corner at (x, y).
type Region interface {
	Size() (width, height int)
	Draw(dst *Pixmap, x, y int)
}

// RegionFunc adapts a size and a draw function to a Region.
type RegionFunc struct {
	Width, Height int
	DrawFunc      func(dst *Pixmap, x, y int)
}

// Size implements Region.
func (r RegionFunc) Size() (width, height int) { return r.Width, r.Height }

// Draw implements Region.
func (r RegionFunc) Draw(dst *Pixmap, x, y int) {
	if r.DrawFunc != nil {
		r.DrawFunc(dst, x, y)
	}
}

// Decorated is a region with a shimmer effect attached. It owns the Effect,
// the offscreen layer and, unless one was shared with WithAnimator, the
// Animator. The host keeps one Decorated per region for the region's
// lifetime and drops it when the region goes away.
//
// A frame is Measure, Tick, then Paint.
type Decorated struct {
	region      Region
	effect      *Effect
	animator    *Animator
	ownAnimator bool
	layer       *Pixmap
}

// Attach decorates region with a shimmer effect configured by cfg.
//
// Example:
//
//	d := shimmer.Attach(card, true, shimmer.DefaultConfig())
//	for each frame {
//	    d.Measure()
//	    d.Tick(dt)
//	    d.Paint(screen, x, y)
//	}
func Attach(region Region, visible bool, cfg Config, opts ...Option) *Decorated {
	o := applyOptions(opts)
	d := &Decorated{
		region:   region,
		effect:   NewEffect(cfg, opts...),
		animator: o.animator,
		layer:    NewPixmap(0, 0),
	}
	if d.animator == nil {
		d.animator = NewAnimator(cfg)
		d.ownAnimator = true
	}
	d.effect.SetVisible(visible)
	d.Measure()
	return d
}

// Region returns the decorated content.
func (d *Decorated) Region() Region { return d.region }

// Effect returns the engine.
func (d *Decorated) Effect() *Effect { return d.effect }

// Animator returns the clock driving this region.
func (d *Decorated) Animator() *Animator { return d.animator }

// Visible reports whether the sweep is active.
func (d *Decorated) Visible() bool { return d.effect.Visible() }

// SetVisible toggles the sweep. The clock keeps its phase, so hiding and
// showing again resumes the sweep where it would have been.
func (d *Decorated) SetVisible(v bool) { d.effect.SetVisible(v) }

// SetConfig swaps the config on the effect and, for an owned animator, the
// timing on the clock.
func (d *Decorated) SetConfig(cfg Config) {
	d.effect.SetConfig(cfg)
	if d.ownAnimator {
		d.animator.SetTiming(cfg)
	}
}

// Measure asks the region for its size and hands it to the effect.
func (d *Decorated) Measure() {
	w, h := d.region.Size()
	d.effect.Measure(float64(w), float64(h))
}

// Tick advances an owned animator by dt and pushes the progress into the
// effect. With a shared animator, dt is ignored and the shared progress is
// read. Returns the progress.
func (d *Decorated) Tick(dt time.Duration) float64 {
	p := d.animator.Progress()
	if d.ownAnimator {
		p = d.animator.Update(dt)
	}
	d.effect.SetProgress(p)
	return p
}

// Paint draws the decorated region onto dst with its top-left corner at
// (x, y).
//
// When the effect is hidden the content is drawn straight into dst and no
// layer is used. Otherwise the content is rendered into the offscreen layer,
// the band is composited against it, and the layer is drawn over dst.
func (d *Decorated) Paint(dst *Pixmap, x, y int) {
	if !d.effect.Visible() {
		d.region.Draw(dst, x, y)
		return
	}

	w, h := d.region.Size()
	d.layer.Resize(w, h)
	d.region.Draw(d.layer, 0, 0)
	d.effect.Composite(d.layer)
	dst.DrawPixmap(d.layer, x, y)
}
