// Package input classifies raw pointer events and extracts ink samples
// from them.
//
// A Classifier tags every event with a Source and runs the palm-rejection
// state machine. Accepted events go to an Extractor, which pulls the
// primary pointer's current and batched historical samples, normalizes
// pressure against a session-wide Calibration and decomposes pen tilt into
// a 2D vector.
package input
