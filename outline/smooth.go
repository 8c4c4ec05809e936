package outline

import (
	"math"

	"github.com/gogpu/ink"
)

// DefaultAlpha is the recommended smoothing factor for Smooth.
const DefaultAlpha = 0.35

// Smooth runs a zero-phase low-pass filter over values: an exponential
// moving average forward, then a second one backward over the forward
// result, which cancels the lag of the first pass.
//
//	f[0] = v[0],      f[i] = α·v[i] + (1-α)·f[i-1]
//	r[n-1] = f[n-1],  r[i] = α·f[i] + (1-α)·r[i+1]
//
// Sequences of length <= 2 are returned unchanged. The result is always a
// new slice of the same length. An alpha outside (0, 1] selects
// DefaultAlpha.
func Smooth(values []float64, alpha float64) []float64 {
	out := make([]float64, len(values))
	copy(out, values)
	n := len(out)
	if n <= 2 {
		return out
	}
	alpha = sanitizeAlpha(alpha)
	beta := 1 - alpha

	for i := 1; i < n; i++ {
		out[i] = alpha*values[i] + beta*out[i-1]
	}
	// out[n-1] keeps its forward value; walk back mixing forward values.
	next := out[n-1]
	for i := n - 2; i >= 0; i-- {
		next = alpha*out[i] + beta*next
		out[i] = next
	}
	return out
}

// SmoothPressure returns a copy of points with the pressure channel run
// through Smooth. Positions, tilt and timestamps are untouched.
func SmoothPressure(points []ink.SamplePoint, alpha float64) []ink.SamplePoint {
	pressures := make([]float64, len(points))
	for i, p := range points {
		pressures[i] = p.Pressure
	}
	pressures = Smooth(pressures, alpha)

	out := make([]ink.SamplePoint, len(points))
	for i, p := range points {
		out[i] = p.WithPressure(ink.ClampUnit(pressures[i]))
	}
	return out
}

func sanitizeAlpha(alpha float64) float64 {
	if math.IsNaN(alpha) || alpha <= 0 || alpha > 1 {
		return DefaultAlpha
	}
	return alpha
}
