package shimmer

// Option configures an Effect or a Decorated region during creation.
//
// Example:
//
//	fx := shimmer.NewEffect(cfg, shimmer.WithInterpolation(shimmer.InterpolationLinear))
type Option func(*options)

type options struct {
	interpolation Interpolation
	animator      *Animator
	workers       int
}

func defaultOptions() options {
	return options{
		interpolation: InterpolationSRGB,
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithInterpolation selects the color space the gradient blends in.
func WithInterpolation(i Interpolation) Option {
	return func(o *options) {
		o.interpolation = i
	}
}

// WithAnimator makes a Decorated region use a caller-owned animator instead
// of creating its own. Regions sharing an animator sweep in lockstep; the
// caller then advances the animator and Decorated.Tick only reads it.
// Ignored by NewEffect.
func WithAnimator(a *Animator) Option {
	return func(o *options) {
		o.animator = a
	}
}

// WithWorkers composites large layers in up to n row bands on a shared
// worker pool. Values below 2 keep compositing on the calling goroutine,
// which is the default.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}
