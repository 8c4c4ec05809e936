package outline

import "github.com/gogpu/ink"

const (
	// DefaultTiltDeadzone is the tilt magnitude below which the pen counts
	// as upright and no asymmetry is applied.
	DefaultTiltDeadzone = 0.08

	// DefaultCalligraphyStrength skews each side by up to ±40% of the half
	// width at full tilt with the lean aligned to the normal.
	DefaultCalligraphyStrength = 0.4

	// MinCapRadius is the smallest radius of a cap or single-point dot.
	MinCapRadius = 1.0

	// minSideFraction floors each side at 10% of the half width.
	minSideFraction = 0.1
)

// Option configures a Builder.
//
// Example:
//
//	b := outline.NewBuilder(outline.WithCalligraphyStrength(0.25))
type Option func(*Builder)

// WithMinPressure sets the pressure floor used when pressure scales width.
func WithMinPressure(p float64) Option {
	return func(b *Builder) {
		if p > 0 && p <= 1 {
			b.minPressure = p
		}
	}
}

// WithTiltDeadzone sets the tilt magnitude at or below which tilt is
// ignored.
func WithTiltDeadzone(d float64) Option {
	return func(b *Builder) {
		if d >= 0 && d < 1 {
			b.tiltDeadzone = d
		}
	}
}

// WithCalligraphyStrength sets the tilt asymmetry strength k.
func WithCalligraphyStrength(k float64) Option {
	return func(b *Builder) {
		if k >= 0 && k <= 1 {
			b.strength = k
		}
	}
}

func defaultBuilder() Builder {
	return Builder{
		minPressure:  ink.MinPressure,
		tiltDeadzone: DefaultTiltDeadzone,
		strength:     DefaultCalligraphyStrength,
	}
}
