package input

import (
	"math"

	"github.com/gogpu/ink"
)

// Extractor converts raw events into SamplePoints for the primary pointer,
// in event coordinates. Mapping to canvas space is the caller's job.
type Extractor struct {
	cal *Calibration
}

// NewExtractor returns an extractor normalizing pressure against cal.
// A nil cal gets a fresh Calibration.
func NewExtractor(cal *Calibration) *Extractor {
	if cal == nil {
		cal = NewCalibration()
	}
	return &Extractor{cal: cal}
}

// Calibration returns the pressure calibration in use.
func (x *Extractor) Calibration() *Calibration {
	return x.cal
}

// Extract returns the samples of pointer index primary in chronological
// order. Move and hover events yield every batched historical sample
// followed by the current one; down and up yield the current sample only;
// cancel yields nothing.
func (x *Extractor) Extract(ev *Event, primary int) []ink.SamplePoint {
	if ev == nil || primary < 0 || primary >= len(ev.Pointers) {
		return nil
	}
	p := &ev.Pointers[primary]

	var points []ink.SamplePoint
	switch ev.Action {
	case ActionCancel:
		return nil
	case ActionMove, ActionHover:
		n := ev.HistorySize(primary)
		points = make([]ink.SamplePoint, 0, n+1)
		for h := 0; h < n; h++ {
			points = x.appendSample(points, p.History[h], ev.History[h])
		}
	default:
		points = make([]ink.SamplePoint, 0, 1)
	}
	return x.appendSample(points, p.Sample, ev.Time)
}

func (x *Extractor) appendSample(points []ink.SamplePoint, raw RawSample, t int64) []ink.SamplePoint {
	px, py := raw.X, raw.Y
	if !isFinite(px) || !isFinite(py) {
		var last ink.SamplePoint
		if len(points) > 0 {
			last = points[len(points)-1]
		}
		ink.Logger().Warn("input: non-finite sample position", "x", px, "y", py)
		px, py = ink.Finite(px, last.X), ink.Finite(py, last.Y)
	}
	tx, ty := Decompose(raw.Tilt, raw.Orientation)
	return append(points, ink.SamplePoint{
		X:         px,
		Y:         py,
		Pressure:  x.cal.Normalize(raw.Pressure),
		TiltX:     tx,
		TiltY:     ty,
		Timestamp: t,
	})
}

// Decompose turns a tilt angle (0 = pen vertical, pi/2 = pen flat) and an
// orientation angle into the 2D tilt vector
//
//	(sin(tilt)·cos(orientation), sin(tilt)·sin(orientation))
//
// whose magnitude grows as the pen lies flatter and whose direction is the
// way it leans. Tilt is clamped into [0, pi/2]; non-finite angles count as 0.
func Decompose(tilt, orientation float64) (tiltX, tiltY float64) {
	tilt = math.Max(0, math.Min(ink.Finite(tilt, 0), math.Pi/2))
	orientation = ink.Finite(orientation, 0)
	mag := math.Sin(tilt)
	sin, cos := math.Sincos(orientation)
	return mag * cos, mag * sin
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
