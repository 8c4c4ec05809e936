package input

import (
	"math"

	"github.com/gogpu/ink"
)

// Calibration tracks the maximum raw pressure observed during a session and
// normalizes raw readings against it. The maximum starts at 1.0 and only
// ever rises, so digitizers that top out below 1.0 still reach full width
// while occasional firmware spikes above 1.0 are absorbed.
//
// One Calibration is meant to outlive individual strokes; it is reset only
// by NewSession.
type Calibration struct {
	max float64
}

// NewCalibration returns a calibration with the maximum at 1.0.
func NewCalibration() *Calibration {
	return &Calibration{max: 1}
}

// NewCalibrationAt returns a calibration whose observed maximum starts at
// initial. Non-positive or non-finite values fall back to 1.0.
func NewCalibrationAt(initial float64) *Calibration {
	if !(initial > 0) || math.IsInf(initial, 0) {
		initial = 1
	}
	return &Calibration{max: initial}
}

// Max returns the maximum raw pressure observed so far.
func (c *Calibration) Max() float64 {
	return c.max
}

// NewSession forgets every observation and restores the maximum to 1.0.
func (c *Calibration) NewSession() {
	c.max = 1
}

// Normalize records raw and returns it scaled into [0, 1].
// Negative and non-finite readings count as zero pressure.
func (c *Calibration) Normalize(raw float64) float64 {
	p := ink.Finite(raw, 0)
	if p < 0 {
		p = 0
	}
	if p > c.max {
		ink.Logger().Debug("input: pressure calibration raised", "from", c.max, "to", p)
		c.max = p
	}
	if c.max <= 0 {
		return 1
	}
	return ink.ClampUnit(p / c.max)
}
