package ink

import "math"

// MinPressure is the floor applied whenever pressure scales a width, so a
// feather-light touch still leaves a visible mark.
const MinPressure = 0.05

// SamplePoint is one input sample carried through the whole pipeline.
//
// X and Y are in canvas space once the sample leaves the session.
// Pressure is normalized into [0, 1]. TiltX and TiltY form the tilt vector:
// its magnitude grows as the pen lies flatter (at most 1) and its direction
// is the way the pen leans. Timestamp is in milliseconds.
type SamplePoint struct {
	X, Y         float64
	Pressure     float64
	TiltX, TiltY float64
	Timestamp    int64
}

// Pos returns the sample position.
func (s SamplePoint) Pos() Point {
	return Point{X: s.X, Y: s.Y}
}

// Tilt returns the tilt vector.
func (s SamplePoint) Tilt() Vec2 {
	return Vec2{X: s.TiltX, Y: s.TiltY}
}

// Translate returns a copy of s moved by (dx, dy).
func (s SamplePoint) Translate(dx, dy float64) SamplePoint {
	s.X += dx
	s.Y += dy
	return s
}

// WithPressure returns a copy of s carrying pressure p.
func (s SamplePoint) WithPressure(p float64) SamplePoint {
	s.Pressure = p
	return s
}

// HalfWidth returns the pressure-scaled half width of a stroke with the
// given base width, with the pressure floored at minPressure.
func HalfWidth(baseWidth, pressure, minPressure float64) float64 {
	return baseWidth * math.Max(ClampUnit(pressure), minPressure) / 2
}

// ClampUnit clamps v into [0, 1]. NaN maps to 0.
func ClampUnit(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// Finite returns v, or fallback when v is NaN or infinite.
func Finite(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}
