// Package outline builds the committed geometry of an ink stroke.
//
// Smooth and SmoothPressure remove pressure jitter with a forward and
// backward exponential moving average (zero phase). Builder offsets each
// sample along its normal by a pressure-scaled half width, skews the two
// sides by pen tilt for a calligraphic look, joins both edges with midpoint
// quadratic fitting and adds round caps.
package outline
