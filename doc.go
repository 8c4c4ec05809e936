// Package ink turns raw pointer and stylus input into smooth, pressure and
// tilt sensitive ink strokes.
//
// # Overview
//
// The root package holds the shared vocabulary: SamplePoint, the geometry
// primitives (Point, Vec2, Rect, Matrix, Path) and a small software Canvas.
// The pipeline lives in sub-packages:
//
//   - input: tool classification, palm rejection, sample extraction with
//     self-calibrating pressure normalization and tilt decomposition
//   - outline: zero-phase pressure smoothing and the variable width outline
//     builder (midpoint quadratic fitting, tilt asymmetry, round caps)
//   - preview: cheap per-frame rendering of an in-progress stroke
//   - object: the committed drawables (stroke, polyline, shape, text) with
//     lazily cached geometry
//   - session: wires the above into a gesture state machine
//
// # Quick Start
//
//	s := session.New(session.WithMessages(msgs))
//	for _, ev := range events {
//	    res := s.Handle(ev)
//	    ...
//	}
//
// # Coordinate System
//
// Canvas space uses the usual computer graphics convention:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians
//
// # Threading
//
// All input for one gesture is processed sequentially on the caller's
// goroutine. The library packages never start goroutines or take locks.
package ink

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
