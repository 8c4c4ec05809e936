package object

import (
	"github.com/gogpu/ink"
)

// ShapeKind selects the geometry of a Shape.
type ShapeKind uint8

const (
	// KindRectangle is an axis-aligned rectangle before rotation.
	KindRectangle ShapeKind = iota
	// KindEllipse is the ellipse inscribed in the shape's rectangle.
	KindEllipse
)

// String returns the kind name.
func (k ShapeKind) String() string {
	switch k {
	case KindRectangle:
		return "rectangle"
	case KindEllipse:
		return "ellipse"
	default:
		return "unknown"
	}
}

// Shape is a filled rectangle or ellipse.
type Shape struct {
	kind     ShapeKind
	rect     ink.Rect
	color    ink.RGBA
	rotation float64
}

// NewShape creates a shape filling the rectangle spanned by two corners.
func NewShape(kind ShapeKind, p1, p2 ink.Point, c ink.RGBA) *Shape {
	return &Shape{kind: kind, rect: ink.NewRect(p1, p2), color: c}
}

// Kind returns the shape kind.
func (s *Shape) Kind() ShapeKind { return s.kind }

// Color returns the fill color.
func (s *Shape) Color() ink.RGBA { return s.color }

// Rotation returns the rotation in radians.
func (s *Shape) Rotation() float64 { return s.rotation }

// SetRotation sets the rotation in radians.
func (s *Shape) SetRotation(angle float64) { s.rotation = ink.Finite(angle, 0) }

// Bounds returns the unrotated bounds.
func (s *Shape) Bounds() ink.Rect { return s.rect }

// Move translates the shape.
func (s *Shape) Move(dx, dy float64) {
	s.rect = s.rect.Translate(ink.Finite(dx, 0), ink.Finite(dy, 0))
}

// Path returns the unrotated geometry.
func (s *Shape) Path() *ink.Path {
	p := ink.NewPath()
	switch s.kind {
	case KindEllipse:
		p.Ellipse(s.rect.Center(), s.rect.Width()/2, s.rect.Height()/2)
	default:
		p.Rectangle(s.rect)
	}
	return p
}

// HitTest reports whether pt is within MinTouchMargin of the shape. Ellipses
// are tested against the ellipse itself rather than its box.
func (s *Shape) HitTest(pt ink.Point) bool {
	if s.kind != KindEllipse {
		return hitBox(s.rect, s.rotation, MinTouchMargin, pt)
	}
	c := s.rect.Center()
	pt = pt.RotateAround(c, -s.rotation)
	rx := s.rect.Width()/2 + MinTouchMargin
	ry := s.rect.Height()/2 + MinTouchMargin
	nx, ny := (pt.X-c.X)/rx, (pt.Y-c.Y)/ry
	return nx*nx+ny*ny <= 1
}

// Draw fills the shape.
func (s *Shape) Draw(dc *ink.Canvas) error {
	return withRotation(dc, s.rect.Center(), s.rotation, func() error {
		return dc.Fill(s.Path(), s.color)
	})
}

// Clone returns a copy.
func (s *Shape) Clone() *Shape {
	c := *s
	return &c
}
