package object

import (
	"github.com/gogpu/ink"
)

// Drawable is a committed canvas object. The set of implementations is
// closed: *Stroke, *Polyline, *Shape and *Text. Operations on a Drawable
// are the package functions Draw, HitTest, Move, Clone and Bounds.
type Drawable interface {
	isDrawable()
}

func (*Stroke) isDrawable()   {}
func (*Polyline) isDrawable() {}
func (*Shape) isDrawable()    {}
func (*Text) isDrawable()     {}

// Draw renders d onto dc.
func Draw(dc *ink.Canvas, d Drawable) error {
	switch v := d.(type) {
	case *Stroke:
		return v.Draw(dc)
	case *Polyline:
		return v.Draw(dc)
	case *Shape:
		return v.Draw(dc)
	case *Text:
		v.Draw(dc)
		return nil
	}
	return nil
}

// HitTest reports whether pt, in canvas space, touches d.
func HitTest(d Drawable, pt ink.Point) bool {
	switch v := d.(type) {
	case *Stroke:
		return v.HitTest(pt)
	case *Polyline:
		return v.HitTest(pt)
	case *Shape:
		return v.HitTest(pt)
	case *Text:
		return v.HitTest(pt)
	}
	return false
}

// Move translates d by (dx, dy).
func Move(d Drawable, dx, dy float64) {
	switch v := d.(type) {
	case *Stroke:
		v.Move(dx, dy)
	case *Polyline:
		v.Move(dx, dy)
	case *Shape:
		v.Move(dx, dy)
	case *Text:
		v.Move(dx, dy)
	}
}

// Clone returns an independent copy of d.
func Clone(d Drawable) Drawable {
	switch v := d.(type) {
	case *Stroke:
		return v.Clone()
	case *Polyline:
		return v.Clone()
	case *Shape:
		return v.Clone()
	case *Text:
		return v.Clone()
	}
	return nil
}

// Bounds returns the unrotated canvas bounds of d.
func Bounds(d Drawable) ink.Rect {
	switch v := d.(type) {
	case *Stroke:
		return v.Bounds()
	case *Polyline:
		return v.Bounds()
	case *Shape:
		return v.Bounds()
	case *Text:
		return v.Bounds()
	}
	return ink.Rect{}
}

// hitBox tests pt against bounds grown by margin, after undoing a rotation
// around the bounds center.
func hitBox(bounds ink.Rect, rotation, margin float64, pt ink.Point) bool {
	pt = pt.RotateAround(bounds.Center(), -rotation)
	return bounds.Grow(margin).Contains(pt)
}

// withRotation runs draw with dc's transform rotated by angle around
// center, restoring the transform afterwards.
func withRotation(dc *ink.Canvas, center ink.Point, angle float64, draw func() error) error {
	if angle == 0 {
		return draw()
	}
	saved := dc.Matrix()
	dc.SetMatrix(saved.Multiply(ink.RotateAround(center, angle)))
	defer dc.SetMatrix(saved)
	return draw()
}
