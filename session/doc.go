// Package session wires the ink pipeline together for one input surface.
//
// Each raw event goes through the palm-rejection classifier, then the
// sample extractor, then the screen to canvas transform, and lands in the
// in-progress buffer the preview renderer draws every frame. When the
// drawing pointer lifts, the buffer is pressure smoothed and becomes an
// object.Stroke, which is returned and also sent as a StrokeCommitted
// message.
//
// Events are handled synchronously on the caller's goroutine. Messages are
// delivered on a caller-supplied channel in the order they happen.
package session
