package object

import (
	"github.com/gogpu/ink"
	"github.com/gogpu/ink/outline"
)

// Polyline is a constant width line through a list of points, drawn with
// the same outline construction as a stroke at full pressure.
type Polyline struct {
	line *Stroke
}

// NewPolyline creates a polyline of the given width.
func NewPolyline(points []ink.Point, width float64, c ink.RGBA, opts ...Option) *Polyline {
	samples := make([]ink.SamplePoint, len(points))
	for i, p := range points {
		samples[i] = ink.SamplePoint{X: p.X, Y: p.Y, Pressure: 1}
	}
	return &Polyline{line: NewStroke(samples, width, c, false, opts...)}
}

// Points returns the vertices with the current offset applied.
func (l *Polyline) Points() []ink.Point {
	samples := l.line.Points()
	out := make([]ink.Point, len(samples))
	for i, s := range samples {
		out[i] = s.Pos()
	}
	return out
}

// Width returns the line width.
func (l *Polyline) Width() float64 { return l.line.BaseWidth() }

// Color returns the line color.
func (l *Polyline) Color() ink.RGBA { return l.line.Color() }

// Rotation returns the rotation in radians.
func (l *Polyline) Rotation() float64 { return l.line.Rotation() }

// SetRotation sets the rotation in radians.
func (l *Polyline) SetRotation(angle float64) { l.line.SetRotation(angle) }

// Move translates the polyline and invalidates its cached outline.
func (l *Polyline) Move(dx, dy float64) { l.line.Move(dx, dy) }

// Outline returns the cached outline.
func (l *Polyline) Outline() outline.Outline { return l.line.Outline() }

// Bounds returns the unrotated bounds.
func (l *Polyline) Bounds() ink.Rect { return l.line.Bounds() }

// HitTest reports whether pt touches the polyline's bounds.
func (l *Polyline) HitTest(pt ink.Point) bool { return l.line.HitTest(pt) }

// Draw renders the polyline.
func (l *Polyline) Draw(dc *ink.Canvas) error { return l.line.Draw(dc) }

// Clone returns an independent copy.
func (l *Polyline) Clone() *Polyline {
	return &Polyline{line: l.line.Clone()}
}
