package shimmer

import (
	"context"
	"log/slog"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	minDuration = time.Millisecond

	// DefaultFrameInterval is the Run tick used when none is given.
	DefaultFrameInterval = time.Second / 60
)

// Animator drives shimmer progress: each cycle holds progress at 0 for the
// configured delay, then runs it linearly from 0 to 1 over the configured
// duration, and starts over. There is no terminal state.
//
// The Animator is the host's clock. It owns no Effect; hosts push its
// progress into one or more effects.
type Animator struct {
	duration time.Duration
	delay    time.Duration

	sweep    *gween.Tween
	elapsed  time.Duration // within the current cycle
	total    time.Duration
	cycles   int
	progress float64
}

// NewAnimator creates an animator with the timing of cfg, positioned at the
// start of the first cycle.
func NewAnimator(cfg Config) *Animator {
	a := &Animator{}
	a.setTiming(cfg.Duration, cfg.Delay)
	return a
}

func (a *Animator) setTiming(duration, delay time.Duration) {
	a.duration = max(duration, minDuration)
	a.delay = max(delay, 0)
	a.sweep = gween.New(0, 1, float32(a.duration.Seconds()), ease.Linear)
	a.Reset()
}

// SetTiming adopts the duration and delay of cfg. The animator restarts
// only when the timing actually changed.
func (a *Animator) SetTiming(cfg Config) {
	duration, delay := max(cfg.Duration, minDuration), max(cfg.Delay, 0)
	if duration == a.duration && delay == a.delay {
		return
	}
	Logger().Debug("shimmer: animator timing changed",
		slog.Duration("duration", duration),
		slog.Duration("delay", delay))
	a.setTiming(duration, delay)
}

// Reset rewinds to the start of a cycle.
func (a *Animator) Reset() {
	a.sweep.Reset()
	a.elapsed = 0
	a.total = 0
	a.cycles = 0
	a.progress = 0
}

// Update advances the clock by dt and returns the new progress.
// Negative steps are ignored.
func (a *Animator) Update(dt time.Duration) float64 {
	if dt <= 0 {
		return a.progress
	}
	a.total += dt
	a.elapsed += dt

	cycle := a.delay + a.duration
	if a.elapsed >= cycle {
		a.cycles += int(a.elapsed / cycle)
		a.elapsed %= cycle
	}

	if a.elapsed < a.delay {
		a.progress = 0
		return a.progress
	}
	current, _ := a.sweep.Set(float32((a.elapsed - a.delay).Seconds()))
	a.progress = clamp01(float64(current))
	return a.progress
}

// Progress returns the current progress in [0, 1].
func (a *Animator) Progress() float64 { return a.progress }

// Elapsed returns the total time the animator has been advanced since the
// last reset.
func (a *Animator) Elapsed() time.Duration { return a.total }

// Cycles returns the number of completed cycles since the last reset.
func (a *Animator) Cycles() int { return a.cycles }

// Duration returns the effective sweep duration.
func (a *Animator) Duration() time.Duration { return a.duration }

// Delay returns the effective pause before each sweep.
func (a *Animator) Delay() time.Duration { return a.delay }

// Run advances the animator from a wall-clock ticker every interval and
// calls frame with the new progress, until ctx is done. It returns
// ctx.Err(). A non-positive interval selects DefaultFrameInterval.
//
// frame runs on the calling goroutine, so it may touch effects that are
// otherwise confined to that goroutine.
func (a *Animator) Run(ctx context.Context, interval time.Duration, frame func(progress float64)) error {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			p := a.Update(now.Sub(last))
			last = now
			frame(p)
		}
	}
}
