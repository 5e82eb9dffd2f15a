package shimmer

import (
	"bytes"
	"testing"
	"time"
)

var testGray = Hex("#888888")

// cardRegion draws an opaque box on its left half and leaves the right
// half empty.
func cardRegion(w, h int) RegionFunc {
	return RegionFunc{
		Width:  w,
		Height: h,
		DrawFunc: func(dst *Pixmap, x, y int) {
			dst.FillRect(x, y, w/2, h, testGray)
		},
	}
}

func TestAttachMeasures(t *testing.T) {
	d := Attach(cardRegion(300, 60), true, DefaultConfig())
	w, h := d.Effect().Size()
	if w != 300 || h != 60 {
		t.Errorf("Effect().Size() = (%v, %v), want (300, 60)", w, h)
	}
	if !d.Visible() || d.Effect().State() != Sweeping {
		t.Error("Attach(visible=true) should start sweeping")
	}
}

func TestDecoratedHiddenPaintEqualsContent(t *testing.T) {
	configs := []Config{
		DefaultConfig(),
		NewConfig(WithDirection(RightToLeft), WithAngle(60), WithIntensity(-3)),
	}
	for _, cfg := range configs {
		region := cardRegion(40, 20)
		d := Attach(region, false, cfg)
		for _, dt := range []time.Duration{0, 300 * time.Millisecond, 800 * time.Millisecond} {
			d.Measure()
			d.Tick(dt)

			got := NewPixmap(64, 32)
			got.Clear(White)
			d.Paint(got, 5, 6)

			want := NewPixmap(64, 32)
			want.Clear(White)
			region.Draw(want, 5, 6)

			if !bytes.Equal(got.Data(), want.Data()) {
				t.Fatalf("hidden paint differs from plain content (cfg=%v, progress=%v)", cfg, d.Effect().Progress())
			}
		}
	}
}

func TestDecoratedVisiblePaintStaysInsideContent(t *testing.T) {
	d := Attach(cardRegion(40, 20), true, DefaultConfig())
	d.Tick(700 * time.Millisecond)

	dst := NewPixmap(64, 32)
	dst.Clear(White)
	d.Paint(dst, 5, 6)

	// Right half of the region has no content: background untouched.
	if got := dst.GetPixel(5+30, 6+10); got != White {
		t.Errorf("empty area = %v, want white", got)
	}
	// Outside the region entirely.
	if got := dst.GetPixel(0, 0); got != White {
		t.Errorf("outside = %v, want white", got)
	}
	// Covered area is no longer the plain content color.
	plain := NewPixmap(64, 32)
	plain.Clear(White)
	cardRegion(40, 20).Draw(plain, 5, 6)
	if dst.GetPixel(10, 10) == plain.GetPixel(10, 10) {
		t.Error("covered area shows plain content while sweeping")
	}
}

func TestDecoratedTick(t *testing.T) {
	d := Attach(cardRegion(10, 10), true, DefaultConfig())
	if got := d.Tick(700 * time.Millisecond); !near(got, 0.5, progressEpsilon) {
		t.Errorf("Tick() = %v, want 0.5", got)
	}
	if !near(d.Effect().Progress(), 0.5, progressEpsilon) {
		t.Errorf("effect progress = %v, want 0.5", d.Effect().Progress())
	}
}

func TestDecoratedSharedAnimator(t *testing.T) {
	clock := NewAnimator(DefaultConfig())
	a := Attach(cardRegion(10, 10), true, DefaultConfig(), WithAnimator(clock))
	b := Attach(cardRegion(20, 10), true, DefaultConfig(), WithAnimator(clock))

	clock.Update(700 * time.Millisecond)
	pa := a.Tick(time.Hour)
	pb := b.Tick(time.Hour)
	if !near(pa, 0.5, progressEpsilon) || pa != pb {
		t.Errorf("shared progress = %v and %v, want 0.5 for both", pa, pb)
	}
	if clock.Elapsed() != 700*time.Millisecond {
		t.Errorf("Tick advanced a shared animator: elapsed %v", clock.Elapsed())
	}

	a.SetConfig(NewConfig(WithDuration(5 * time.Second)))
	if clock.Duration() != time.Second {
		t.Error("SetConfig changed the timing of a shared animator")
	}
}

func TestDecoratedSetConfig(t *testing.T) {
	d := Attach(cardRegion(10, 10), true, DefaultConfig())
	cfg := NewConfig(WithDuration(2*time.Second), WithIntensity(0.5))
	d.SetConfig(cfg)
	if d.Effect().Config() != cfg {
		t.Error("effect config not replaced")
	}
	if d.Animator().Duration() != 2*time.Second {
		t.Errorf("animator duration = %v, want 2s", d.Animator().Duration())
	}
}

func TestDecoratedRemeasure(t *testing.T) {
	size := [2]int{30, 10}
	dyn := dynamicRegion(func() (int, int) { return size[0], size[1] })

	d := Attach(dyn, true, DefaultConfig())
	size = [2]int{60, 20}
	d.Measure()
	if w, h := d.Effect().Size(); w != 60 || h != 20 {
		t.Errorf("after remeasure Size() = (%v, %v), want (60, 20)", w, h)
	}
	// Paint after a resize must size the layer to the new region.
	dst := NewPixmap(80, 40)
	d.Paint(dst, 0, 0)
}

type dynamicRegion func() (int, int)

func (r dynamicRegion) Size() (int, int) { return r() }

func (r dynamicRegion) Draw(dst *Pixmap, x, y int) {
	w, h := r()
	dst.FillRect(x, y, w, h, Black)
}
