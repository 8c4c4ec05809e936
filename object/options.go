package object

import "github.com/gogpu/ink/outline"

// MinTouchMargin is the smallest distance outside its bounds at which a
// stroke still counts as hit, so thin lines stay easy to select.
const MinTouchMargin = 4.0

// Option configures a Stroke or Polyline.
//
// Example:
//
//	s := object.NewStroke(points, 6, ink.Black, true,
//	    object.WithBuilder(outline.NewBuilder(outline.WithMinPressure(0.1))))
type Option func(*settings)

type settings struct {
	builder     *outline.Builder
	marginFloor float64
}

// WithBuilder sets the outline builder used to compute the cached
// geometry. A nil builder is ignored.
func WithBuilder(b *outline.Builder) Option {
	return func(s *settings) {
		if b != nil {
			s.builder = b
		}
	}
}

// WithTouchMarginFloor sets the smallest hit-test margin. Negative values
// are ignored.
func WithTouchMarginFloor(m float64) Option {
	return func(s *settings) {
		if m >= 0 {
			s.marginFloor = m
		}
	}
}

func newSettings(opts []Option) settings {
	s := settings{marginFloor: MinTouchMargin}
	for _, opt := range opts {
		opt(&s)
	}
	if s.builder == nil {
		s.builder = outline.NewBuilder()
	}
	return s
}
