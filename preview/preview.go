// Package preview draws in-progress strokes cheaply, once per frame.
//
// The preview never fits curves: it stamps a disk at every sample and
// bridges consecutive disks with a trapezoid, which is O(n) arithmetic.
// Widths come from the same outline.Builder used at commit time so the
// committed outline replaces the preview without a visible jump.
package preview

import (
	"math"

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/outline"
)

const (
	// MinHoverRadius is the smallest ring radius of the hover indicator.
	MinHoverRadius = 6.0

	hoverRingWidth  = 1.5
	hoverCrossWidth = 1.0
)

// Renderer draws live previews.
type Renderer struct {
	builder *outline.Builder
}

// New returns a renderer sizing stamps with b. A nil b uses the default
// builder.
func New(b *outline.Builder) *Renderer {
	if b == nil {
		b = outline.NewBuilder()
	}
	return &Renderer{builder: b}
}

// Path returns the preview geometry of points: a disk per sample and a
// trapezoid between each consecutive pair, all wound Positive so the
// single nonzero fill unions them without double-blending overlaps.
func (r *Renderer) Path(points []ink.SamplePoint, baseWidth float64) *ink.Path {
	p := ink.NewPath()
	if len(points) == 0 {
		return p
	}

	prev := points[0]
	prevR := r.builder.HalfWidth(baseWidth, prev.Pressure)
	p.Circle(prev.Pos(), prevR, ink.Positive)

	for _, cur := range points[1:] {
		curR := r.builder.HalfWidth(baseWidth, cur.Pressure)
		a, b := prev.Pos(), cur.Pos()
		if d := b.Sub(a); !d.IsZero() {
			n := d.Unit(ink.UnitX).Perp()
			// This corner order is Positive for any segment direction.
			p.Polygon(
				a.Offset(n, -prevR),
				b.Offset(n, -curR),
				b.Offset(n, curR),
				a.Offset(n, prevR),
			)
		}
		p.Circle(b, curR, ink.Positive)
		prev, prevR = cur, curR
	}
	return p
}

// Render draws the preview of points onto dc. An empty buffer draws
// nothing.
func (r *Renderer) Render(dc *ink.Canvas, points []ink.SamplePoint, baseWidth float64, c ink.RGBA) error {
	if len(points) == 0 {
		return nil
	}
	return dc.Fill(r.Path(points, baseWidth), c)
}

// HoverPath returns a ring with a crosshair centered on pt, marking a pen
// that hovers without touching.
func HoverPath(pt ink.Point, radius float64) *ink.Path {
	radius = math.Max(radius, MinHoverRadius)
	p := ink.NewPath()
	p.Circle(pt, radius, ink.Positive)
	p.Circle(pt, radius-hoverRingWidth, ink.Negative)
	p.Append(crosshair(pt, radius*0.6))
	return p
}

// crosshair returns two bars of half length arm crossing at pt.
func crosshair(pt ink.Point, arm float64) *ink.Path {
	hw := hoverCrossWidth / 2
	p := ink.NewPath()
	p.Rectangle(ink.Rect{Min: ink.Pt(pt.X-arm, pt.Y-hw), Max: ink.Pt(pt.X+arm, pt.Y+hw)})
	p.Rectangle(ink.Rect{Min: ink.Pt(pt.X-hw, pt.Y-arm), Max: ink.Pt(pt.X+hw, pt.Y+arm)})
	return p
}

// RenderHover draws the hover indicator for a pen of the given base width.
func (r *Renderer) RenderHover(dc *ink.Canvas, pt ink.Point, baseWidth float64, c ink.RGBA) error {
	return dc.Fill(HoverPath(pt, baseWidth/2), c)
}
