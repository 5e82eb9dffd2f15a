package shimmer

import (
	"fmt"
	"time"
)

// Default configuration values.
const (
	DefaultDropOff   = 0.5
	DefaultIntensity = 0.2
	DefaultAngle     = 20.0
	DefaultDuration  = 1000 * time.Millisecond
	DefaultDelay     = 200 * time.Millisecond
)

// Config holds every tunable parameter of one shimmer instance.
//
// Config is a comparable value: two configs are the same when their fields
// are equal. Hosts change the appearance of a running effect by handing it
// a whole new Config, never by mutating one in place.
//
// Nothing is validated here. DropOff and Intensity are nominally in [0, 1]
// and Duration is nominally positive; out-of-range values are clamped where
// they are consumed so a bad config still renders something sane.
type Config struct {
	// ContentColor is the base band color; its alpha is the band opacity.
	ContentColor RGBA
	// HighlightColor is the bright sweeping band color.
	HighlightColor RGBA
	// DropOff is the width of the transition between base and highlight.
	DropOff float64
	// Intensity is the width of the fully highlighted band.
	Intensity float64
	// Direction is the axis and sense of the sweep.
	Direction Direction
	// Angle rotates the band, in degrees, before it is translated.
	Angle float64
	// Duration is the time one sweep takes to run from 0 to 1.
	Duration time.Duration
	// Delay is the pause before each sweep.
	Delay time.Duration
}

// DefaultConfig returns the stock light-gray shimmer.
func DefaultConfig() Config {
	return Config{
		ContentColor:   LightGray.WithAlpha(0.3),
		HighlightColor: LightGray.WithAlpha(0.9),
		DropOff:        DefaultDropOff,
		Intensity:      DefaultIntensity,
		Direction:      LeftToRight,
		Angle:          DefaultAngle,
		Duration:       DefaultDuration,
		Delay:          DefaultDelay,
	}
}

// ConfigOption adjusts a Config built by NewConfig.
type ConfigOption func(*Config)

// NewConfig returns DefaultConfig with opts applied in order.
//
// Example:
//
//	cfg := shimmer.NewConfig(
//	    shimmer.WithDirection(shimmer.TopToBottom),
//	    shimmer.WithAngle(0),
//	)
func NewConfig(opts ...ConfigOption) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithContentColor sets the base band color.
func WithContentColor(c RGBA) ConfigOption {
	return func(cfg *Config) { cfg.ContentColor = c }
}

// WithHighlightColor sets the sweeping band color.
func WithHighlightColor(c RGBA) ConfigOption {
	return func(cfg *Config) { cfg.HighlightColor = c }
}

// WithDropOff sets the transition width.
func WithDropOff(v float64) ConfigOption {
	return func(cfg *Config) { cfg.DropOff = v }
}

// WithIntensity sets the highlighted band width.
func WithIntensity(v float64) ConfigOption {
	return func(cfg *Config) { cfg.Intensity = v }
}

// WithDirection sets the sweep direction.
func WithDirection(d Direction) ConfigOption {
	return func(cfg *Config) { cfg.Direction = d }
}

// WithAngle sets the band rotation in degrees.
func WithAngle(deg float64) ConfigOption {
	return func(cfg *Config) { cfg.Angle = deg }
}

// WithDuration sets the sweep duration.
func WithDuration(d time.Duration) ConfigOption {
	return func(cfg *Config) { cfg.Duration = d }
}

// WithDelay sets the pause between sweeps.
func WithDelay(d time.Duration) ConfigOption {
	return func(cfg *Config) { cfg.Delay = d }
}

// String summarises the config for logs.
func (c Config) String() string {
	return fmt.Sprintf("shimmer{content=%v highlight=%v dropOff=%g intensity=%g direction=%v angle=%g duration=%v delay=%v}",
		c.ContentColor, c.HighlightColor, c.DropOff, c.Intensity, c.Direction, c.Angle, c.Duration, c.Delay)
}

// colors returns the four gradient colors in stop order.
func (c Config) colors() [4]RGBA {
	return [4]RGBA{c.ContentColor, c.HighlightColor, c.HighlightColor, c.ContentColor}
}
