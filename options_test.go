package shimmer

import "testing"

func TestDefaultOptions(t *testing.T) {
	o := applyOptions(nil)
	if o.interpolation != InterpolationSRGB || o.animator != nil || o.workers != 0 {
		t.Errorf("defaults = %+v", o)
	}
}

func TestWithInterpolation(t *testing.T) {
	e := NewEffect(DefaultConfig(), WithInterpolation(InterpolationLinear))
	e.Measure(10, 10)
	if e.Brush().Interpolation != InterpolationLinear {
		t.Error("brush ignores WithInterpolation")
	}
	e.SetConfig(NewConfig(WithAngle(5)))
	if e.Brush().Interpolation != InterpolationLinear {
		t.Error("rebuilt brush lost the interpolation option")
	}
}

func TestWithAnimatorIgnoredByEffect(t *testing.T) {
	a := NewAnimator(DefaultConfig())
	e := NewEffect(DefaultConfig(), WithAnimator(a))
	if e.Progress() != 0 {
		t.Errorf("Progress() = %v", e.Progress())
	}
}
