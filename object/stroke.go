package object

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/outline"
)

// FlatStride is the number of values per point in Stroke.Flatten:
// x, y, pressure, tiltX, tiltY, timestamp.
const FlatStride = 6

// ErrFlatLength is returned by StrokeFromFlat when the input length is not
// a multiple of FlatStride.
var ErrFlatLength = errors.New("object: flat point list length is not a multiple of 6")

// Stroke is a committed pressure and tilt aware ink stroke.
//
// The recorded points never change. Moving the stroke accumulates an
// offset and drops the cached outline; the next Outline, Bounds, Draw or
// HitTest call rebuilds it from the offset points. Rotation is applied
// around the center of the cached bounds at draw and hit-test time and
// leaves the cache alone.
type Stroke struct {
	points    []ink.SamplePoint
	baseWidth float64
	color     ink.RGBA
	tilt      bool
	rotation  float64
	dx, dy    float64

	settings settings
	cache    *outline.Outline
}

// NewStroke creates a stroke from smoothed canvas-space points. The slice
// is copied.
func NewStroke(points []ink.SamplePoint, baseWidth float64, c ink.RGBA, tilt bool, opts ...Option) *Stroke {
	return &Stroke{
		points:    append([]ink.SamplePoint(nil), points...),
		baseWidth: baseWidth,
		color:     c,
		tilt:      tilt,
		settings:  newSettings(opts),
	}
}

// StrokeFromFlat rebuilds a stroke from the output of Flatten.
func StrokeFromFlat(flat []float64, baseWidth float64, c ink.RGBA, tilt bool, opts ...Option) (*Stroke, error) {
	if len(flat)%FlatStride != 0 {
		return nil, fmt.Errorf("%w: got %d values", ErrFlatLength, len(flat))
	}
	points := make([]ink.SamplePoint, 0, len(flat)/FlatStride)
	for i := 0; i < len(flat); i += FlatStride {
		points = append(points, ink.SamplePoint{
			X:         flat[i],
			Y:         flat[i+1],
			Pressure:  flat[i+2],
			TiltX:     flat[i+3],
			TiltY:     flat[i+4],
			Timestamp: int64(flat[i+5]),
		})
	}
	s := NewStroke(nil, baseWidth, c, tilt, opts...)
	s.points = points
	return s, nil
}

// Points returns the stroke points with the current offset applied.
func (s *Stroke) Points() []ink.SamplePoint {
	out := make([]ink.SamplePoint, len(s.points))
	for i, p := range s.points {
		out[i] = p.Translate(s.dx, s.dy)
	}
	return out
}

// Len returns the number of points.
func (s *Stroke) Len() int {
	return len(s.points)
}

// BaseWidth returns the width at full pressure.
func (s *Stroke) BaseWidth() float64 {
	return s.baseWidth
}

// Color returns the ink color.
func (s *Stroke) Color() ink.RGBA {
	return s.color
}

// SetColor changes the ink color. Geometry is unaffected.
func (s *Stroke) SetColor(c ink.RGBA) {
	s.color = c
}

// TiltEnabled reports whether tilt shapes the outline.
func (s *Stroke) TiltEnabled() bool {
	return s.tilt
}

// Rotation returns the rotation in radians.
func (s *Stroke) Rotation() float64 {
	return s.rotation
}

// SetRotation sets the rotation in radians. The cached outline is kept.
func (s *Stroke) SetRotation(angle float64) {
	s.rotation = ink.Finite(angle, 0)
}

// Offset returns the accumulated translation.
func (s *Stroke) Offset() (dx, dy float64) {
	return s.dx, s.dy
}

// Move translates the stroke and invalidates the cached outline.
func (s *Stroke) Move(dx, dy float64) {
	s.dx += ink.Finite(dx, 0)
	s.dy += ink.Finite(dy, 0)
	s.cache = nil
}

// Cached reports whether the outline is currently built.
func (s *Stroke) Cached() bool {
	return s.cache != nil
}

// Outline returns the cached outline, building it first if needed.
func (s *Stroke) Outline() outline.Outline {
	if s.cache == nil {
		o := s.settings.builder.Build(s.Points(), s.baseWidth, s.tilt)
		s.cache = &o
		ink.Logger().Debug("object: stroke outline built",
			"points", len(s.points), "bounds", o.Bounds)
	}
	return *s.cache
}

// Bounds returns the unrotated bounds of the outline.
func (s *Stroke) Bounds() ink.Rect {
	return s.Outline().Bounds
}

// TouchMargin is the distance outside the bounds that still hits.
func (s *Stroke) TouchMargin() float64 {
	return math.Max(s.baseWidth/2, s.settings.marginFloor)
}

// HitTest reports whether pt falls inside the bounds grown by the touch
// margin, after undoing the rotation. An empty stroke is never hit.
func (s *Stroke) HitTest(pt ink.Point) bool {
	if len(s.points) == 0 {
		return false
	}
	return hitBox(s.Bounds(), s.rotation, s.TouchMargin(), pt)
}

// Draw fills the cached outline, rotated around the bounds center.
func (s *Stroke) Draw(dc *ink.Canvas) error {
	if len(s.points) == 0 {
		return nil
	}
	o := s.Outline()
	return withRotation(dc, o.Bounds.Center(), s.rotation, func() error {
		return dc.Fill(o.Path, s.color)
	})
}

// Clone returns a copy sharing nothing with s. The copy starts without a
// cached outline.
func (s *Stroke) Clone() *Stroke {
	c := *s
	c.points = append([]ink.SamplePoint(nil), s.points...)
	c.cache = nil
	return &c
}

// Flatten returns FlatStride values per point with the offset applied.
func (s *Stroke) Flatten() []float64 {
	flat := make([]float64, 0, len(s.points)*FlatStride)
	for _, p := range s.points {
		flat = append(flat,
			p.X+s.dx, p.Y+s.dy, p.Pressure, p.TiltX, p.TiltY, float64(p.Timestamp))
	}
	return flat
}
