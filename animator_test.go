package shimmer

import (
	"context"
	"errors"
	"testing"
	"time"
)

const progressEpsilon = 1e-5

func TestAnimatorCycle(t *testing.T) {
	// Default timing: 200ms delay, then a 1000ms sweep.
	a := NewAnimator(DefaultConfig())

	steps := []struct {
		dt     time.Duration
		want   float64
		cycles int
	}{
		{100 * time.Millisecond, 0, 0},   // t=100, delaying
		{100 * time.Millisecond, 0, 0},   // t=200, sweep starts
		{500 * time.Millisecond, 0.5, 0}, // t=700
		{400 * time.Millisecond, 0.9, 0}, // t=1100
		{100 * time.Millisecond, 0, 1},   // t=1200, restart
		{300 * time.Millisecond, 0.1, 1}, // t=1500
	}

	for i, s := range steps {
		got := a.Update(s.dt)
		if !near(got, s.want, progressEpsilon) {
			t.Errorf("step %d: Update(%v) = %v, want %v", i, s.dt, got, s.want)
		}
		if a.Cycles() != s.cycles {
			t.Errorf("step %d: Cycles() = %d, want %d", i, a.Cycles(), s.cycles)
		}
	}
	if a.Elapsed() != 1500*time.Millisecond {
		t.Errorf("Elapsed() = %v, want 1.5s", a.Elapsed())
	}
}

func TestAnimatorLargeStep(t *testing.T) {
	a := NewAnimator(DefaultConfig())
	got := a.Update(3*1200*time.Millisecond + 700*time.Millisecond)
	if !near(got, 0.5, progressEpsilon) {
		t.Errorf("progress = %v, want 0.5", got)
	}
	if a.Cycles() != 3 {
		t.Errorf("Cycles() = %d, want 3", a.Cycles())
	}
}

func TestAnimatorIgnoresNegativeStep(t *testing.T) {
	a := NewAnimator(NewConfig(WithDelay(0)))
	a.Update(250 * time.Millisecond)
	if got := a.Update(-time.Second); !near(got, 0.25, progressEpsilon) {
		t.Errorf("negative step changed progress to %v", got)
	}
	if a.Elapsed() != 250*time.Millisecond {
		t.Errorf("Elapsed() = %v, want 250ms", a.Elapsed())
	}
}

func TestAnimatorClampsTiming(t *testing.T) {
	a := NewAnimator(NewConfig(WithDuration(-time.Second), WithDelay(-time.Second)))
	if a.Duration() != time.Millisecond {
		t.Errorf("Duration() = %v, want 1ms", a.Duration())
	}
	if a.Delay() != 0 {
		t.Errorf("Delay() = %v, want 0", a.Delay())
	}
	got := a.Update(1500 * time.Microsecond)
	if !near(got, 0.5, progressEpsilon) {
		t.Errorf("progress = %v, want 0.5", got)
	}
}

func TestAnimatorSetTiming(t *testing.T) {
	a := NewAnimator(DefaultConfig())
	a.Update(700 * time.Millisecond)

	a.SetTiming(NewConfig(WithIntensity(0.9)))
	if !near(a.Progress(), 0.5, progressEpsilon) {
		t.Errorf("unchanged timing restarted the animator: progress %v", a.Progress())
	}

	a.SetTiming(NewConfig(WithDuration(2 * time.Second)))
	if a.Progress() != 0 || a.Elapsed() != 0 {
		t.Errorf("new timing should restart, got progress %v elapsed %v", a.Progress(), a.Elapsed())
	}
	if got := a.Update(1200 * time.Millisecond); !near(got, 0.5, progressEpsilon) {
		t.Errorf("progress with 2s duration = %v, want 0.5", got)
	}
}

func TestAnimatorReset(t *testing.T) {
	a := NewAnimator(DefaultConfig())
	a.Update(5 * time.Second)
	a.Reset()
	if a.Progress() != 0 || a.Cycles() != 0 || a.Elapsed() != 0 {
		t.Errorf("Reset left progress=%v cycles=%d elapsed=%v", a.Progress(), a.Cycles(), a.Elapsed())
	}
}

func TestAnimatorRun(t *testing.T) {
	a := NewAnimator(NewConfig(WithDelay(0), WithDuration(50*time.Millisecond)))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var frames []float64
	err := a.Run(ctx, time.Millisecond, func(p float64) {
		frames = append(frames, p)
		if len(frames) == 3 {
			cancel()
		}
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() = %v, want context.Canceled", err)
	}
	if len(frames) != 3 {
		t.Fatalf("got %d frames, want 3", len(frames))
	}
	for i, p := range frames {
		if p < 0 || p > 1 {
			t.Errorf("frame %d progress %v outside [0,1]", i, p)
		}
	}
}

func TestAnimatorRunDeadline(t *testing.T) {
	a := NewAnimator(DefaultConfig())
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := a.Run(ctx, 0, func(float64) {})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Run() = %v, want context.DeadlineExceeded", err)
	}
}
