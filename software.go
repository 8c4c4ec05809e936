package ink

import (
	"errors"
	"image"
	"image/draw"

	"golang.org/x/image/vector"
)

// ErrNilPixmap is returned when a renderer is asked to draw into nothing.
var ErrNilPixmap = errors.New("ink: nil pixmap")

// SoftwareRenderer is a CPU rasterizer backed by golang.org/x/image/vector.
//
// The rasterizer accumulates signed coverage, so overlapping subpaths that
// share an orientation stay filled while opposite orientations cut holes.
// The outline builder relies on this to union caps with the stroke body.
type SoftwareRenderer struct {
	rasterizer *vector.Rasterizer
}

// NewSoftwareRenderer creates a new software renderer.
func NewSoftwareRenderer() *SoftwareRenderer {
	return &SoftwareRenderer{}
}

// Fill implements Renderer.Fill with anti-aliasing.
func (r *SoftwareRenderer) Fill(pixmap *Pixmap, p *Path, c RGBA) error {
	if pixmap == nil {
		return ErrNilPixmap
	}
	if p.Empty() || c.A <= 0 {
		return nil
	}

	w, h := pixmap.Width(), pixmap.Height()
	if w == 0 || h == 0 {
		return nil
	}
	if r.rasterizer == nil {
		r.rasterizer = vector.NewRasterizer(w, h)
	} else {
		r.rasterizer.Reset(w, h)
	}
	z := r.rasterizer
	z.DrawOp = draw.Over

	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			z.MoveTo(f32(e.Point))
		case LineTo:
			z.LineTo(f32(e.Point))
		case QuadTo:
			cx, cy := f32(e.Control)
			x, y := f32(e.Point)
			z.QuadTo(cx, cy, x, y)
		case CubicTo:
			c1x, c1y := f32(e.Control1)
			c2x, c2y := f32(e.Control2)
			x, y := f32(e.Point)
			z.CubeTo(c1x, c1y, c2x, c2y, x, y)
		case Close:
			z.ClosePath()
		}
	}

	dst := pixmap.Image()
	z.Draw(dst, dst.Bounds(), image.NewUniform(c.Color()), image.Point{})
	return nil
}

func f32(p Point) (float32, float32) {
	return float32(p.X), float32(p.Y)
}
