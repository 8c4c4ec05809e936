package outline

import (
	"math"

	"github.com/gogpu/ink"
)

// Outline is the finished geometry of a stroke: one closed path filled with
// the nonzero rule, and its axis-aligned bounds.
type Outline struct {
	Path   *ink.Path
	Bounds ink.Rect
}

// Builder turns a smoothed point sequence into a variable width outline.
// A Builder holds only its parameters and is safe to share.
type Builder struct {
	minPressure  float64
	tiltDeadzone float64
	strength     float64
}

// NewBuilder creates a builder with the recommended parameters, adjusted by
// opts.
func NewBuilder(opts ...Option) *Builder {
	b := defaultBuilder()
	for _, opt := range opts {
		opt(&b)
	}
	return &b
}

// MinPressure returns the pressure floor used for widths.
func (b *Builder) MinPressure() float64 {
	return b.minPressure
}

// HalfWidth returns the symmetric half width for pressure p.
func (b *Builder) HalfWidth(baseWidth, p float64) float64 {
	return ink.HalfWidth(baseWidth, p, b.minPressure)
}

// HalfWidths returns the distances of the left and right edges from sample
// s, given the unit normal at s. With tilt disabled, or the pen inside the
// deadzone, both sides equal the pressure-scaled half width. Otherwise the
// side the pen leans toward widens and the other narrows, each floored at a
// tenth of the half width.
func (b *Builder) HalfWidths(s ink.SamplePoint, normal ink.Vec2, baseWidth float64, tilt bool) (left, right float64) {
	half := b.HalfWidth(baseWidth, s.Pressure)
	if !tilt {
		return half, half
	}
	tv := s.Tilt()
	mag := tv.Length()
	if !(mag > b.tiltDeadzone) || math.IsInf(mag, 0) {
		return half, half
	}
	projection := tv.Mul(1 / mag).Dot(normal)
	projection = math.Max(-1, math.Min(projection, 1))
	asymmetry := projection * math.Min(mag, 1) * half * b.strength

	floor := half * minSideFraction
	return math.Max(half+asymmetry, floor), math.Max(half-asymmetry, floor)
}

// Normals returns the unit normal at every point. Tangents come from the
// central difference of the neighbors (forward at the first point, backward
// at the last); a zero-length difference falls back to (1, 0).
func Normals(points []ink.SamplePoint) []ink.Vec2 {
	n := len(points)
	normals := make([]ink.Vec2, n)
	if n < 2 {
		for i := range normals {
			normals[i] = ink.UnitX.Perp()
		}
		return normals
	}
	for i := range points {
		prev, next := max(i-1, 0), min(i+1, n-1)
		tangent := points[next].Pos().Sub(points[prev].Pos()).Unit(ink.UnitX)
		normals[i] = tangent.Perp()
	}
	return normals
}

// Edges returns the left and right offset polylines and each sample's
// largest half extent.
func (b *Builder) Edges(points []ink.SamplePoint, baseWidth float64, tilt bool) (left, right []ink.Point, reach []float64) {
	normals := Normals(points)
	left = make([]ink.Point, len(points))
	right = make([]ink.Point, len(points))
	reach = make([]float64, len(points))
	for i, s := range points {
		l, r := b.HalfWidths(s, normals[i], baseWidth, tilt)
		pos := s.Pos()
		left[i] = pos.Offset(normals[i], l)
		right[i] = pos.Offset(normals[i], -r)
		reach[i] = math.Max(b.HalfWidth(baseWidth, s.Pressure), math.Max(l, r))
	}
	return left, right, reach
}

// Build produces the filled outline of points.
//
// An empty sequence gives an empty path and zero bounds. A single point
// gives a dot of the pressure-scaled half width (at least MinCapRadius).
// Longer sequences give the left edge and the reversed right edge joined
// into one contour by midpoint quadratic fitting, plus round caps at both
// ends wound the same way as the contour so the fill unions them.
//
// Bounds cover the fitted path and every sample's disk of its largest half
// extent, so corner cutting by the fit never shrinks the box.
func (b *Builder) Build(points []ink.SamplePoint, baseWidth float64, tilt bool) Outline {
	baseWidth = math.Max(ink.Finite(baseWidth, 0), 0)
	p := ink.NewPath()

	switch len(points) {
	case 0:
		return Outline{Path: p}
	case 1:
		c := points[0].Pos()
		r := b.capRadius(baseWidth, points[0])
		p.Circle(c, r, ink.Positive)
		return Outline{Path: p, Bounds: ink.RectAround(c, r).Union(p.BoundingBox())}
	}

	left, right, reach := b.Edges(points, baseWidth, tilt)

	p.MoveTo(left[0])
	midpointCurve(p, left)
	// Straight across the tip, then back along the right edge.
	p.LineTo(right[len(right)-1])
	midpointCurve(p, reversed(right))
	p.Close()

	o := ink.OrientationOf(p.Area())
	first, last := points[0], points[len(points)-1]
	p.Circle(first.Pos(), b.capRadius(baseWidth, first), o)
	p.Circle(last.Pos(), b.capRadius(baseWidth, last), o)

	bounds := p.BoundingBox()
	for i, s := range points {
		bounds = bounds.Union(ink.RectAround(s.Pos(), reach[i]))
	}
	return Outline{Path: p, Bounds: bounds}
}

func (b *Builder) capRadius(baseWidth float64, s ink.SamplePoint) float64 {
	return math.Max(b.HalfWidth(baseWidth, s.Pressure), MinCapRadius)
}

// midpointCurve continues p, whose current point is pts[0], through pts
// using every interior point as a quadratic control and the midpoints of
// consecutive points as on-curve anchors. The first and last legs are
// straight lines.
func midpointCurve(p *ink.Path, pts []ink.Point) {
	n := len(pts)
	if n < 2 {
		return
	}
	p.LineTo(pts[0].Mid(pts[1]))
	for i := 1; i < n-1; i++ {
		p.QuadTo(pts[i], pts[i].Mid(pts[i+1]))
	}
	p.LineTo(pts[n-1])
}

func reversed(pts []ink.Point) []ink.Point {
	out := make([]ink.Point, len(pts))
	for i, pt := range pts {
		out[len(pts)-1-i] = pt
	}
	return out
}
